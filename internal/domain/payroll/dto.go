package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== FILTER DTOs ==========

type DailySalaryFilter struct {
	UserID string `json:"user_id"`
	From   string `json:"from"` // YYYY-MM-DD
	To     string `json:"to"`   // YYYY-MM-DD
}

// ApplyDefaults fills an empty range with the month containing now.
func (f *DailySalaryFilter) ApplyDefaults(now time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if f.From == "" {
		f.From = first.Format(utils.DateLayout)
	}
	if f.To == "" {
		f.To = first.AddDate(0, 1, -1).Format(utils.DateLayout)
	}
}

func (f *DailySalaryFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	errs = append(errs, validator.ValidateDateRange(f.From, f.To)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed bounds. Call only after Validate succeeded.
func (f *DailySalaryFilter) Range() (from, to time.Time) {
	from, _ = time.Parse(utils.DateLayout, f.From)
	to, _ = time.Parse(utils.DateLayout, f.To)
	return from, to
}

// ========== RESPONSE DTOs ==========

type ShiftResponse struct {
	Date                 string          `json:"date"`
	ShiftName            string          `json:"shift_name"`
	ShiftStartTime       string          `json:"shift_start_time"`
	ShiftEndTime         string          `json:"shift_end_time"`
	ShiftDurationHours   decimal.Decimal `json:"shift_duration_hours"`
	ShiftMultiplier      decimal.Decimal `json:"shift_multiplier"`
	CheckinTime          *string         `json:"checkin_time,omitempty"`
	CheckoutTime         *string         `json:"checkout_time,omitempty"`
	HoursWorked          decimal.Decimal `json:"hours_worked"`
	RegularHours         decimal.Decimal `json:"regular_hours"`
	OvertimeHours        decimal.Decimal `json:"overtime_hours"`
	SalaryRate           decimal.Decimal `json:"salary_rate"`
	RegularAmount        decimal.Decimal `json:"regular_amount"`
	OvertimeAmount       decimal.Decimal `json:"overtime_amount"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	TotalAmountFormatted string          `json:"total_amount_formatted"`
	Discrepancies        []Discrepancy   `json:"discrepancies,omitempty"`
}

type DailySalaryGroupResponse struct {
	Date                 string          `json:"date"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	TotalAmountFormatted string          `json:"total_amount_formatted"`
	Shifts               []ShiftResponse `json:"shifts"`
}

type SummaryResponse struct {
	TotalShifts          int             `json:"total_shifts"`
	HoursWorked          decimal.Decimal `json:"hours_worked"`
	RegularHours         decimal.Decimal `json:"regular_hours"`
	OvertimeHours        decimal.Decimal `json:"overtime_hours"`
	RegularAmount        decimal.Decimal `json:"regular_amount"`
	OvertimeAmount       decimal.Decimal `json:"overtime_amount"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	TotalAmountFormatted string          `json:"total_amount_formatted"`
}

type DailySalaryResponse struct {
	UserID  string                     `json:"user_id"`
	From    string                     `json:"from"`
	To      string                     `json:"to"`
	Stale   bool                       `json:"stale"` // served from the stored snapshot
	Groups  []DailySalaryGroupResponse `json:"groups"`
	Summary SummaryResponse            `json:"summary"`
}

type MonthlySalaryResponse struct {
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	ShiftSalary        decimal.Decimal `json:"shift_salary"`
	Bonus              decimal.Decimal `json:"bonus"`
	Penalty            decimal.Decimal `json:"penalty"`
	NetSalary          decimal.Decimal `json:"net_salary"`
	NetSalaryFormatted string          `json:"net_salary_formatted"`
	Status             string          `json:"status,omitempty"`
}

type OverviewResponse struct {
	Daily   DailySalaryResponse     `json:"daily"`
	Monthly []MonthlySalaryResponse `json:"monthly"`
}

type SyncResult struct {
	RunID       string `json:"run_id"`
	UserID      string `json:"user_id"`
	From        string `json:"from"`
	To          string `json:"to"`
	RecordCount int    `json:"record_count"`
}
