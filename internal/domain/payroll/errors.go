package payroll

import "errors"

var (
	ErrSalaryAccessDenied  = errors.New("not allowed to view another employee's salary")
	ErrSnapshotNotFound    = errors.New("no stored salary snapshot for this period")
	ErrSalarySourceFailure = errors.New("salary data is temporarily unavailable")
)
