package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimePremium is applied on top of the shift multiplier for hours beyond the scheduled duration.
var OvertimePremium = decimal.NewFromFloat(1.5)

// ShiftRecord - One worked shift with its pay breakdown, as returned by the HR backend
type ShiftRecord struct {
	Date               string // raw value from upstream, may carry a time-of-day part
	ShiftName          string
	ShiftStartTime     string // "15:04" or "15:04:05"
	ShiftEndTime       string
	ShiftDurationHours decimal.Decimal
	ShiftMultiplier    decimal.Decimal
	CheckinTime        *time.Time
	CheckoutTime       *time.Time
	HoursWorked        decimal.Decimal
	RegularHours       decimal.Decimal
	OvertimeHours      decimal.Decimal
	SalaryRate         decimal.Decimal
	RegularAmount      decimal.Decimal
	OvertimeAmount     decimal.Decimal
	TotalAmount        decimal.Decimal
}

// DailySalaryGroup - Shifts sharing one calendar date
type DailySalaryGroup struct {
	Date        string
	Shifts      []ShiftRecord
	TotalAmount decimal.Decimal
}

// Summary - Totals over a set of shifts
type Summary struct {
	TotalShifts    int
	HoursWorked    decimal.Decimal
	RegularHours   decimal.Decimal
	OvertimeHours  decimal.Decimal
	RegularAmount  decimal.Decimal
	OvertimeAmount decimal.Decimal
	TotalAmount    decimal.Decimal
}

// MonthlySalary - Payslip for one month
type MonthlySalary struct {
	Month       int
	Year        int
	BaseSalary  decimal.Decimal
	ShiftSalary decimal.Decimal
	Bonus       decimal.Decimal
	Penalty     decimal.Decimal
	NetSalary   decimal.Decimal
	Status      string
}

// SyncRun - One refresh of a user's snapshot from the HR backend
type SyncRun struct {
	ID          string
	UserID      string
	From        time.Time
	To          time.Time
	RecordCount int
	Error       *string
	CreatedAt   time.Time
}
