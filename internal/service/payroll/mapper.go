package payroll

import (
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/payroll"
)

func (s *PayrollServiceImpl) toShiftResponse(r payroll.ShiftRecord) payroll.ShiftResponse {
	return payroll.ShiftResponse{
		Date:                 r.Date,
		ShiftName:            r.ShiftName,
		ShiftStartTime:       r.ShiftStartTime,
		ShiftEndTime:         r.ShiftEndTime,
		ShiftDurationHours:   r.ShiftDurationHours,
		ShiftMultiplier:      r.ShiftMultiplier,
		CheckinTime:          formatTime(r.CheckinTime),
		CheckoutTime:         formatTime(r.CheckoutTime),
		HoursWorked:          r.HoursWorked,
		RegularHours:         r.RegularHours,
		OvertimeHours:        r.OvertimeHours,
		SalaryRate:           r.SalaryRate,
		RegularAmount:        r.RegularAmount,
		OvertimeAmount:       r.OvertimeAmount,
		TotalAmount:          r.TotalAmount,
		TotalAmountFormatted: s.formatter.Format(r.TotalAmount),
		Discrepancies:        payroll.Discrepancies(r),
	}
}

func (s *PayrollServiceImpl) toGroupResponse(g payroll.DailySalaryGroup) payroll.DailySalaryGroupResponse {
	shifts := make([]payroll.ShiftResponse, 0, len(g.Shifts))
	for _, r := range g.Shifts {
		shifts = append(shifts, s.toShiftResponse(r))
	}
	return payroll.DailySalaryGroupResponse{
		Date:                 g.Date,
		TotalAmount:          g.TotalAmount,
		TotalAmountFormatted: s.formatter.Format(g.TotalAmount),
		Shifts:               shifts,
	}
}

func (s *PayrollServiceImpl) toSummaryResponse(sum payroll.Summary) payroll.SummaryResponse {
	return payroll.SummaryResponse{
		TotalShifts:          sum.TotalShifts,
		HoursWorked:          sum.HoursWorked,
		RegularHours:         sum.RegularHours,
		OvertimeHours:        sum.OvertimeHours,
		RegularAmount:        sum.RegularAmount,
		OvertimeAmount:       sum.OvertimeAmount,
		TotalAmount:          sum.TotalAmount,
		TotalAmountFormatted: s.formatter.Format(sum.TotalAmount),
	}
}

func (s *PayrollServiceImpl) toMonthlyResponse(m payroll.MonthlySalary) payroll.MonthlySalaryResponse {
	return payroll.MonthlySalaryResponse{
		Month:              m.Month,
		Year:               m.Year,
		BaseSalary:         m.BaseSalary,
		ShiftSalary:        m.ShiftSalary,
		Bonus:              m.Bonus,
		Penalty:            m.Penalty,
		NetSalary:          m.NetSalary,
		NetSalaryFormatted: s.formatter.Format(m.NetSalary),
		Status:             m.Status,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
