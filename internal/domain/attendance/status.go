package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/utils"
)

// Classify derives the display status of one record.
//
// With no punches at all, a past date is absent and anything else is unknown.
// Late is checked before early leave, so a record that is both reports late.
// There is no grace period: any check-in after the scheduled start is late.
// A shift whose end is not after its start ends on the next day.
func Classify(r Record, now time.Time) Status {
	day, dayOK := utils.ParseDate(r.Date)

	if r.CheckinTime == nil && r.CheckoutTime == nil {
		if dayOK && day.Before(utils.StartOfDay(now)) {
			return StatusAbsent
		}
		return StatusUnknown
	}
	if !dayOK {
		return StatusUnknown
	}

	if r.CheckinTime != nil {
		if start, ok := scheduledStart(r, day, r.CheckinTime.Location()); ok && r.CheckinTime.After(start) {
			return StatusLate
		}
	}

	if r.CheckoutTime != nil {
		if end, ok := scheduledEnd(r, day, r.CheckoutTime.Location()); ok && r.CheckoutTime.Before(end) {
			return StatusEarlyLeave
		}
	}

	return StatusPresent
}

func scheduledStart(r Record, day time.Time, loc *time.Location) (time.Time, bool) {
	h, m, s, ok := utils.ParseClock(r.ShiftStartTime)
	if !ok {
		return time.Time{}, false
	}
	return utils.At(day, h, m, s, loc), true
}

func scheduledEnd(r Record, day time.Time, loc *time.Location) (time.Time, bool) {
	h, m, s, ok := utils.ParseClock(r.ShiftEndTime)
	if !ok {
		return time.Time{}, false
	}
	end := utils.At(day, h, m, s, loc)

	// Night shift
	if start, ok := scheduledStart(r, day, loc); ok && !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return end, true
}

var labels = map[Status]string{
	StatusPresent:    "Present",
	StatusLate:       "Late",
	StatusEarlyLeave: "Early leave",
	StatusAbsent:     "Absent",
}

// Label returns the display text of a status, or a dash placeholder when it is not classified.
func Label(s Status) string {
	if l, ok := labels[s]; ok {
		return l
	}
	return "—"
}

// CountByStatus classifies every record and tallies the results.
func CountByStatus(records []Record, now time.Time) map[Status]int {
	counts := map[Status]int{
		StatusPresent:    0,
		StatusLate:       0,
		StatusEarlyLeave: 0,
		StatusAbsent:     0,
		StatusUnknown:    0,
	}
	for _, r := range records {
		counts[Classify(r, now)]++
	}
	return counts
}
