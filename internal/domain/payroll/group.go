package payroll

import (
	"slices"
	"strings"

	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

// DateKey is the grouping key for an upstream date: "YYYY-MM-DD" when parsable, the raw value otherwise.
func DateKey(raw string) string {
	if t, ok := utils.ParseDate(raw); ok {
		return t.Format(utils.DateLayout)
	}
	return raw
}

// GroupByDate groups shifts by calendar date, most recent day first.
// Shifts keep their received order inside a group. Dates that cannot be parsed
// form their own group keyed by the raw value and sort after every dated group.
func GroupByDate(records []ShiftRecord) []DailySalaryGroup {
	groups := make([]DailySalaryGroup, 0)
	index := make(map[string]int)

	for _, r := range records {
		key := DateKey(r.Date)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DailySalaryGroup{Date: key, TotalAmount: decimal.Zero})
		}
		groups[i].Shifts = append(groups[i].Shifts, r)
		groups[i].TotalAmount = groups[i].TotalAmount.Add(r.TotalAmount)
	}

	slices.SortStableFunc(groups, func(a, b DailySalaryGroup) int {
		ta, okA := utils.ParseDate(a.Date)
		tb, okB := utils.ParseDate(b.Date)
		switch {
		case okA && okB:
			return tb.Compare(ta)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return strings.Compare(b.Date, a.Date)
		}
	})

	return groups
}

// Summarize totals hours and amounts over the given shifts.
func Summarize(records []ShiftRecord) Summary {
	s := Summary{
		HoursWorked:    decimal.Zero,
		RegularHours:   decimal.Zero,
		OvertimeHours:  decimal.Zero,
		RegularAmount:  decimal.Zero,
		OvertimeAmount: decimal.Zero,
		TotalAmount:    decimal.Zero,
	}
	for _, r := range records {
		s.TotalShifts++
		s.HoursWorked = s.HoursWorked.Add(r.HoursWorked)
		s.RegularHours = s.RegularHours.Add(r.RegularHours)
		s.OvertimeHours = s.OvertimeHours.Add(r.OvertimeHours)
		s.RegularAmount = s.RegularAmount.Add(r.RegularAmount)
		s.OvertimeAmount = s.OvertimeAmount.Add(r.OvertimeAmount)
		s.TotalAmount = s.TotalAmount.Add(r.TotalAmount)
	}
	return s
}

// SortMonthlyHistory orders payslips most recent month first.
func SortMonthlyHistory(history []MonthlySalary) []MonthlySalary {
	sorted := slices.Clone(history)
	slices.SortStableFunc(sorted, func(a, b MonthlySalary) int {
		if a.Year != b.Year {
			return b.Year - a.Year
		}
		return b.Month - a.Month
	})
	return sorted
}

// ResolveNetSalary fills NetSalary from its parts when upstream left it empty.
func ResolveNetSalary(m MonthlySalary) MonthlySalary {
	if m.NetSalary.IsZero() {
		m.NetSalary = m.BaseSalary.Add(m.ShiftSalary).Add(m.Bonus).Sub(m.Penalty)
	}
	return m
}
