package hrapi

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// DailySalary fetches per-shift salary records of userID between from and to.
func (c *Client) DailySalary(ctx context.Context, userID string, from, to time.Time) ([]payroll.ShiftRecord, error) {
	payload, err := c.getJSON(ctx, "/api/Salary/daily/user/"+url.PathEscape(userID), dateRange(from, to))
	if err != nil {
		return nil, err
	}

	var out []payroll.ShiftRecord
	for _, o := range records(payload) {
		out = append(out, shiftRecord(o))
	}
	return out, nil
}

// MonthlyHistory fetches the payslip history of userID.
func (c *Client) MonthlyHistory(ctx context.Context, userID string) ([]payroll.MonthlySalary, error) {
	payload, err := c.getJSON(ctx, "/api/Salary/monthly/user/"+url.PathEscape(userID)+"/history", nil)
	if err != nil {
		return nil, err
	}

	var out []payroll.MonthlySalary
	for _, o := range records(payload) {
		out = append(out, monthlySalary(o))
	}
	return out, nil
}

func shiftRecord(o object) payroll.ShiftRecord {
	// Shift details are either flat or nested under "shift"
	shift := o.child("shift", "workShift")
	if shift == nil {
		shift = object{}
	}
	pick := func(aliases ...string) object {
		if o.has(aliases...) {
			return o
		}
		return shift
	}

	multiplierKeys := []string{"shiftMultiplier", "multiplier", "rateMultiplier"}
	multiplier := decimal.NewFromInt(1)
	if src := pick(multiplierKeys...); src.has(multiplierKeys...) {
		multiplier = src.dec(multiplierKeys...)
	}

	return payroll.ShiftRecord{
		Date:               o.str("date", "workDate", "attendanceDate", "shiftDate"),
		ShiftName:          pick("shiftName").str("shiftName", "name"),
		ShiftStartTime:     pick("shiftStartTime", "startTime").str("shiftStartTime", "startTime"),
		ShiftEndTime:       pick("shiftEndTime", "endTime").str("shiftEndTime", "endTime"),
		ShiftDurationHours: pick("shiftDurationHours", "shiftDuration", "durationHours", "duration").dec("shiftDurationHours", "shiftDuration", "durationHours", "duration"),
		ShiftMultiplier:    multiplier,
		CheckinTime:        o.timestamp("checkinTime", "checkInTime", "checkin", "checkIn", "clockIn"),
		CheckoutTime:       o.timestamp("checkoutTime", "checkOutTime", "checkout", "checkOut", "clockOut"),
		HoursWorked:        o.dec("hoursWorked", "workedHours", "totalHours", "workingHours"),
		RegularHours:       o.dec("regularHours", "normalHours"),
		OvertimeHours:      o.dec("overtimeHours", "otHours"),
		SalaryRate:         o.dec("salaryRate", "hourlyRate", "baseRate", "rate"),
		RegularAmount:      o.dec("regularAmount", "regularSalary", "regularPay"),
		OvertimeAmount:     o.dec("overtimeAmount", "overtimeSalary", "overtimePay"),
		TotalAmount:        o.dec("totalAmount", "totalSalary", "amount", "total"),
	}
}

func monthlySalary(o object) payroll.MonthlySalary {
	m := payroll.MonthlySalary{
		Month:       o.integer("month"),
		Year:        o.integer("year"),
		BaseSalary:  o.dec("baseSalary", "basicSalary"),
		ShiftSalary: o.dec("shiftSalary", "totalShiftSalary", "shiftAmount"),
		Bonus:       o.dec("bonus", "bonuses", "totalBonus"),
		Penalty:     o.dec("penalty", "penalties", "totalPenalty", "deduction", "deductions"),
		NetSalary:   o.dec("netSalary", "totalSalary", "total"),
		Status:      o.str("status"),
	}

	// "2025-01" or "01/2025" periods when month/year are not given separately
	if m.Month == 0 || m.Year == 0 {
		if month, year, ok := parsePeriod(o.str("period", "monthYear", "salaryMonth")); ok {
			m.Month, m.Year = month, year
		}
	}

	return payroll.ResolveNetSalary(m)
}

func parsePeriod(s string) (month, year int, ok bool) {
	layouts := append([]string{"2006-01", "01/2006", "1/2006", "2006-01-02"}, timestampLayouts...)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return int(t.Month()), t.Year(), true
		}
	}
	return 0, 0, false
}
