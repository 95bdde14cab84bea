package attendance

import (
	"time"
)

// Status is the display category of one attendance record
type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "early_leave"
	StatusAbsent     Status = "absent"
	StatusUnknown    Status = "unknown" // not classifiable yet, rendered as a placeholder
)

// Record is one attendance entry against an assigned shift
type Record struct {
	Date           string // raw value from upstream, may carry a time-of-day part
	ShiftName      string
	ShiftStartTime string // "15:04" or "15:04:05"
	ShiftEndTime   string
	CheckinTime    *time.Time
	CheckoutTime   *time.Time
}
