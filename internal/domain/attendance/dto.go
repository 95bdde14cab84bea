package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MyAttendanceFilter struct {
	From string `json:"from"` // YYYY-MM-DD
	To   string `json:"to"`   // YYYY-MM-DD
}

// ApplyDefaults fills an empty range with the month containing now.
func (f *MyAttendanceFilter) ApplyDefaults(now time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if f.From == "" {
		f.From = first.Format(utils.DateLayout)
	}
	if f.To == "" {
		f.To = first.AddDate(0, 1, -1).Format(utils.DateLayout)
	}
}

func (f *MyAttendanceFilter) Validate() error {
	if errs := validator.ValidateDateRange(f.From, f.To); len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed bounds. Call only after Validate succeeded.
func (f *MyAttendanceFilter) Range() (from, to time.Time) {
	from, _ = time.Parse(utils.DateLayout, f.From)
	to, _ = time.Parse(utils.DateLayout, f.To)
	return from, to
}

type AttendanceResponse struct {
	Date           string  `json:"date"`
	ShiftName      string  `json:"shift_name"`
	ShiftStartTime string  `json:"shift_start_time"`
	ShiftEndTime   string  `json:"shift_end_time"`
	CheckinTime    *string `json:"checkin_time,omitempty"`
	CheckoutTime   *string `json:"checkout_time,omitempty"`
	Status         Status  `json:"status"`
	StatusLabel    string  `json:"status_label"`
}

type ListAttendanceResponse struct {
	From    string               `json:"from"`
	To      string               `json:"to"`
	Data    []AttendanceResponse `json:"data"`
	Summary map[Status]int       `json:"summary"`
}
