package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shift(date string, total float64) ShiftRecord {
	return ShiftRecord{Date: date, ShiftName: "Shift " + date, TotalAmount: decimal.NewFromFloat(total)}
}

func TestGroupByDate_Example(t *testing.T) {
	records := []ShiftRecord{
		shift("2025-01-02", 100),
		shift("2025-01-01", 50),
		shift("2025-01-02", 30),
	}

	groups := GroupByDate(records)

	require.Len(t, groups, 2)
	assert.Equal(t, "2025-01-02", groups[0].Date)
	assert.Equal(t, "130", groups[0].TotalAmount.String())
	require.Len(t, groups[0].Shifts, 2)
	assert.Equal(t, "100", groups[0].Shifts[0].TotalAmount.String())
	assert.Equal(t, "30", groups[0].Shifts[1].TotalAmount.String())

	assert.Equal(t, "2025-01-01", groups[1].Date)
	assert.Equal(t, "50", groups[1].TotalAmount.String())
	assert.Len(t, groups[1].Shifts, 1)
}

func TestGroupByDate_Empty(t *testing.T) {
	assert.Empty(t, GroupByDate(nil))
	assert.Empty(t, GroupByDate([]ShiftRecord{}))
}

func TestGroupByDate_StripsTimeOfDay(t *testing.T) {
	records := []ShiftRecord{
		shift("2025-03-10T08:00:00", 10),
		shift("2025-03-10T20:00:00+07:00", 20),
		shift("2025-03-10 23:59:59", 30),
		shift("2025-03-10", 40),
	}

	groups := GroupByDate(records)

	require.Len(t, groups, 1)
	assert.Equal(t, "2025-03-10", groups[0].Date)
	assert.Equal(t, "100", groups[0].TotalAmount.String())
	assert.Len(t, groups[0].Shifts, 4)
}

func TestGroupByDate_MissingAmountCountsAsZero(t *testing.T) {
	records := []ShiftRecord{
		{Date: "2025-02-01"},
		shift("2025-02-01", 75),
	}

	groups := GroupByDate(records)

	require.Len(t, groups, 1)
	assert.Equal(t, "75", groups[0].TotalAmount.String())
}

func TestGroupByDate_UnparsableDateKeepsRawKey(t *testing.T) {
	records := []ShiftRecord{
		shift("not-a-date", 5),
		shift("2025-01-01", 10),
		shift("not-a-date", 6),
		shift("2025-01-03", 1),
	}

	groups := GroupByDate(records)

	require.Len(t, groups, 3)
	assert.Equal(t, "2025-01-03", groups[0].Date)
	assert.Equal(t, "2025-01-01", groups[1].Date)
	assert.Equal(t, "not-a-date", groups[2].Date)
	assert.Equal(t, "11", groups[2].TotalAmount.String())
}

func TestGroupByDate_SortedDescending(t *testing.T) {
	records := []ShiftRecord{
		shift("2024-12-31", 1),
		shift("2025-01-15", 1),
		shift("2025-01-02", 1),
		shift("2023-06-30", 1),
		shift("2025-01-15", 1),
	}

	groups := GroupByDate(records)

	require.Len(t, groups, 4)
	for i := 1; i < len(groups); i++ {
		assert.GreaterOrEqual(t, groups[i-1].Date, groups[i].Date)
	}
}

func TestGroupByDate_ConservesTotal(t *testing.T) {
	records := []ShiftRecord{
		shift("2025-01-05", 12.5),
		shift("2025-01-04", 7.25),
		{Date: "2025-01-05"},
		shift("garbage", 3),
		shift("2025-01-04T10:00:00", 0.25),
	}

	want := decimal.Zero
	for _, r := range records {
		want = want.Add(r.TotalAmount)
	}

	got := decimal.Zero
	for _, g := range GroupByDate(records) {
		got = got.Add(g.TotalAmount)
	}

	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestGroupByDate_Idempotent(t *testing.T) {
	records := []ShiftRecord{
		shift("2025-01-02", 100),
		shift("2025-01-01", 50),
		shift("2025-01-02", 30),
	}

	first := GroupByDate(records)
	second := GroupByDate(records)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Date, second[i].Date)
		assert.True(t, first[i].TotalAmount.Equal(second[i].TotalAmount))
		assert.Equal(t, len(first[i].Shifts), len(second[i].Shifts))
	}
	assert.Equal(t, "2025-01-02", records[0].Date, "input must not be reordered")
}

func TestSummarize(t *testing.T) {
	records := []ShiftRecord{
		{HoursWorked: decimal.NewFromInt(9), RegularHours: decimal.NewFromInt(8), OvertimeHours: decimal.NewFromInt(1), TotalAmount: decimal.NewFromInt(100)},
		{HoursWorked: decimal.NewFromInt(4), RegularHours: decimal.NewFromInt(4), TotalAmount: decimal.NewFromInt(40)},
	}

	s := Summarize(records)

	assert.Equal(t, 2, s.TotalShifts)
	assert.Equal(t, "13", s.HoursWorked.String())
	assert.Equal(t, "12", s.RegularHours.String())
	assert.Equal(t, "1", s.OvertimeHours.String())
	assert.Equal(t, "140", s.TotalAmount.String())
}

func TestSortMonthlyHistory(t *testing.T) {
	history := []MonthlySalary{
		{Month: 11, Year: 2024},
		{Month: 2, Year: 2025},
		{Month: 12, Year: 2024},
	}

	sorted := SortMonthlyHistory(history)

	assert.Equal(t, 2, sorted[0].Month)
	assert.Equal(t, 2025, sorted[0].Year)
	assert.Equal(t, 12, sorted[1].Month)
	assert.Equal(t, 11, sorted[2].Month)
	assert.Equal(t, 11, history[0].Month, "input must not be reordered")
}

func TestResolveNetSalary(t *testing.T) {
	m := ResolveNetSalary(MonthlySalary{
		BaseSalary:  decimal.NewFromInt(5000000),
		ShiftSalary: decimal.NewFromInt(1200000),
		Bonus:       decimal.NewFromInt(300000),
		Penalty:     decimal.NewFromInt(100000),
	})
	assert.Equal(t, "6400000", m.NetSalary.String())

	kept := ResolveNetSalary(MonthlySalary{BaseSalary: decimal.NewFromInt(1), NetSalary: decimal.NewFromInt(9)})
	assert.Equal(t, "9", kept.NetSalary.String())
}
