package export

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const DailySalarySheet = "Daily Salary"

var dailySalaryHeader = []string{
	"Date", "Shift", "Start", "End", "Check-in", "Check-out",
	"Hours Worked", "Regular Hours", "Overtime Hours",
	"Rate", "Multiplier", "Regular Amount", "Overtime Amount", "Total Amount",
}

// DailySalaryWorkbook renders grouped shifts as a single-sheet xlsx file.
// Each day is followed by a subtotal row carrying the day total.
func DailySalaryWorkbook(groups []payroll.DailySalaryGroup) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DailySalarySheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("failed to create amount style: %w", err)
	}

	if err := writeRow(f, 1, toCells(dailySalaryHeader)); err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(DailySalarySheet, 1, 1, boldStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	row := 2
	for _, g := range groups {
		for _, s := range g.Shifts {
			if err := writeRow(f, row, []interface{}{
				g.Date, s.ShiftName, s.ShiftStartTime, s.ShiftEndTime,
				clock(s.CheckinTime), clock(s.CheckoutTime),
				num(s.HoursWorked), num(s.RegularHours), num(s.OvertimeHours),
				num(s.SalaryRate), num(s.ShiftMultiplier),
				num(s.RegularAmount), num(s.OvertimeAmount), num(s.TotalAmount),
			}); err != nil {
				return nil, err
			}
			row++
		}

		subtotal := make([]interface{}, len(dailySalaryHeader))
		subtotal[0] = g.Date
		subtotal[1] = "Subtotal"
		subtotal[len(subtotal)-1] = num(g.TotalAmount)
		if err := writeRow(f, row, subtotal); err != nil {
			return nil, err
		}
		if err := f.SetRowStyle(DailySalarySheet, row, row, boldStyle); err != nil {
			return nil, fmt.Errorf("failed to style subtotal: %w", err)
		}
		row++
	}

	if row > 2 {
		first, _ := excelize.CoordinatesToCellName(10, 2)
		last, _ := excelize.CoordinatesToCellName(len(dailySalaryHeader), row-1)
		if err := f.SetCellStyle(DailySalarySheet, first, last, amountStyle); err != nil {
			return nil, fmt.Errorf("failed to style amounts: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(DailySalarySheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func num(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func clock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}
