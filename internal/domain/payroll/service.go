package payroll

import (
	"context"
)

// PayrollService defines salary read operations for the mobile app
type PayrollService interface {
	// GetDailySalary returns the user's shifts grouped by day, most recent first
	GetDailySalary(ctx context.Context, filter DailySalaryFilter) (DailySalaryResponse, error)

	// GetMonthlyHistory returns the user's payslips, most recent month first
	GetMonthlyHistory(ctx context.Context, userID string) ([]MonthlySalaryResponse, error)

	// GetOverview returns daily groups and monthly history in one call
	GetOverview(ctx context.Context, filter DailySalaryFilter) (OverviewResponse, error)

	// ExportDailySalary renders the daily groups as an xlsx workbook
	ExportDailySalary(ctx context.Context, filter DailySalaryFilter) ([]byte, error)

	// SyncUser refreshes the stored snapshot of one user from the HR backend
	SyncUser(ctx context.Context, filter DailySalaryFilter) (SyncResult, error)
}
