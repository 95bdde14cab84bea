package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitHours(t *testing.T) {
	cases := []struct {
		worked, scheduled string
		regular, overtime string
	}{
		{"8", "8", "8", "0"},
		{"6.5", "8", "6.5", "0"},
		{"10.25", "8", "8", "2.25"},
		{"3", "0", "0", "3"},
		{"-1", "8", "0", "0"},
	}
	for _, c := range cases {
		regular, overtime := SplitHours(d(c.worked), d(c.scheduled))
		assert.True(t, regular.Equal(d(c.regular)), "SplitHours(%s, %s) regular = %s, want %s", c.worked, c.scheduled, regular, c.regular)
		assert.True(t, overtime.Equal(d(c.overtime)), "SplitHours(%s, %s) overtime = %s, want %s", c.worked, c.scheduled, overtime, c.overtime)
	}
}

func TestRecalculate(t *testing.T) {
	r := Recalculate(ShiftRecord{
		HoursWorked:        d("10"),
		ShiftDurationHours: d("8"),
		SalaryRate:         d("25000"),
		ShiftMultiplier:    d("1.2"),
	})

	assert.True(t, r.RegularHours.Equal(d("8")))
	assert.True(t, r.OvertimeHours.Equal(d("2")))
	// 8 * 25000 * 1.2
	assert.True(t, r.RegularAmount.Equal(d("240000")), "regular = %s", r.RegularAmount)
	// 2 * 25000 * 1.2 * 1.5
	assert.True(t, r.OvertimeAmount.Equal(d("90000")), "overtime = %s", r.OvertimeAmount)
	assert.True(t, r.TotalAmount.Equal(d("330000")), "total = %s", r.TotalAmount)
	assert.Empty(t, Discrepancies(r))
}

func TestDiscrepancies(t *testing.T) {
	consistent := Recalculate(ShiftRecord{
		HoursWorked:        d("9"),
		ShiftDurationHours: d("8"),
		SalaryRate:         d("100"),
		ShiftMultiplier:    d("1"),
	})
	assert.Empty(t, Discrepancies(consistent))

	broken := consistent
	broken.TotalAmount = broken.TotalAmount.Add(d("5"))
	broken.OvertimeHours = d("0.5")
	found := Discrepancies(broken)

	assert.Contains(t, found, DiscrepancyHoursSplit)
	assert.Contains(t, found, DiscrepancyOvertimeAmount)
	assert.Contains(t, found, DiscrepancyTotalAmount)
	assert.NotContains(t, found, DiscrepancyRegularAmount)
}

func TestDiscrepancies_WithinTolerance(t *testing.T) {
	r := ShiftRecord{
		HoursWorked:     d("8.333"),
		RegularHours:    d("8.33"),
		SalaryRate:      d("1"),
		ShiftMultiplier: d("1"),
		RegularAmount:   d("8.335"),
		TotalAmount:     d("8.335"),
	}
	assert.Empty(t, Discrepancies(r))
}
