package utils

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	DateLayout,
}

var clockLayouts = []string{
	"15:04:05.9999999",
	"15:04",
}

// ParseDate returns the calendar date of a backend date value at UTC midnight,
// ignoring any time-of-day or offset part.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// ParseClock parses a time-of-day such as "08:00", "08:00:00" or "08:00:00.0000000"
// and returns it as hours, minutes and seconds.
func ParseClock(raw string) (hour, min, sec int, ok bool) {
	s := strings.TrimSpace(raw)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour(), t.Minute(), t.Second(), true
		}
	}
	return 0, 0, 0, false
}

// At places a time-of-day on the given calendar date in loc.
func At(day time.Time, hour, min, sec int, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, sec, 0, loc)
}

// StartOfDay truncates t to midnight of its calendar date, expressed in UTC.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
