package hrapi

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/attendance"
)

// MyAttendance fetches the attendance of the user whose bearer token rides on ctx.
func (c *Client) MyAttendance(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	if _, ok := BearerTokenFrom(ctx); !ok {
		return nil, attendance.ErrMissingUpstreamToken
	}

	payload, err := c.getJSON(ctx, "/api/Attendance/my-attendance", dateRange(from, to))
	if err != nil {
		return nil, err
	}

	var out []attendance.Record
	for _, o := range records(payload) {
		out = append(out, attendanceRecord(o))
	}
	return out, nil
}

func attendanceRecord(o object) attendance.Record {
	shift := o.child("shift", "workShift")
	if shift == nil {
		shift = object{}
	}

	r := attendance.Record{
		Date:           o.str("date", "workDate", "attendanceDate", "shiftDate"),
		ShiftName:      o.str("shiftName"),
		ShiftStartTime: o.str("shiftStartTime", "startTime", "scheduledStart"),
		ShiftEndTime:   o.str("shiftEndTime", "endTime", "scheduledEnd"),
		CheckinTime:    o.timestamp("checkinTime", "checkInTime", "checkin", "checkIn", "clockIn"),
		CheckoutTime:   o.timestamp("checkoutTime", "checkOutTime", "checkout", "checkOut", "clockOut"),
	}

	if r.ShiftName == "" {
		r.ShiftName = shift.str("shiftName", "name")
	}
	if r.ShiftStartTime == "" {
		r.ShiftStartTime = shift.str("shiftStartTime", "startTime")
	}
	if r.ShiftEndTime == "" {
		r.ShiftEndTime = shift.str("shiftEndTime", "endTime")
	}
	if r.Date == "" && r.CheckinTime != nil {
		r.Date = r.CheckinTime.Format("2006-01-02")
	}

	return r
}
