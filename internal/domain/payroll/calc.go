package payroll

import "github.com/shopspring/decimal"

// Tolerance used when comparing upstream figures against recomputed ones.
var Tolerance = decimal.NewFromFloat(0.01)

// SplitHours splits worked hours at the scheduled shift duration.
func SplitHours(worked, scheduled decimal.Decimal) (regular, overtime decimal.Decimal) {
	if worked.IsNegative() {
		return decimal.Zero, decimal.Zero
	}
	if scheduled.IsNegative() {
		scheduled = decimal.Zero
	}
	if worked.LessThanOrEqual(scheduled) {
		return worked, decimal.Zero
	}
	return scheduled, worked.Sub(scheduled)
}

// Recalculate derives the hour split and amounts of a shift from its worked hours,
// scheduled duration, hourly rate and multiplier.
func Recalculate(r ShiftRecord) ShiftRecord {
	r.RegularHours, r.OvertimeHours = SplitHours(r.HoursWorked, r.ShiftDurationHours)

	rate := r.SalaryRate.Mul(r.ShiftMultiplier)
	r.RegularAmount = r.RegularHours.Mul(rate)
	r.OvertimeAmount = r.OvertimeHours.Mul(rate).Mul(OvertimePremium)
	r.TotalAmount = r.RegularAmount.Add(r.OvertimeAmount)
	return r
}

// Discrepancy names one pay invariant an upstream record breaks.
type Discrepancy string

const (
	DiscrepancyHoursSplit     Discrepancy = "hours_split"
	DiscrepancyRegularAmount  Discrepancy = "regular_amount"
	DiscrepancyOvertimeAmount Discrepancy = "overtime_amount"
	DiscrepancyTotalAmount    Discrepancy = "total_amount"
)

// Discrepancies checks the record's own figures against each other.
func Discrepancies(r ShiftRecord) []Discrepancy {
	var found []Discrepancy

	if !within(r.RegularHours.Add(r.OvertimeHours), r.HoursWorked) {
		found = append(found, DiscrepancyHoursSplit)
	}

	rate := r.SalaryRate.Mul(r.ShiftMultiplier)
	if !within(r.RegularHours.Mul(rate), r.RegularAmount) {
		found = append(found, DiscrepancyRegularAmount)
	}
	if !within(r.OvertimeHours.Mul(rate).Mul(OvertimePremium), r.OvertimeAmount) {
		found = append(found, DiscrepancyOvertimeAmount)
	}
	if !within(r.RegularAmount.Add(r.OvertimeAmount), r.TotalAmount) {
		found = append(found, DiscrepancyTotalAmount)
	}

	return found
}

func within(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}
