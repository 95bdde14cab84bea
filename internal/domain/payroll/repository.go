package payroll

import (
	"context"
	"time"
)

// SnapshotRepository keeps the last records fetched from the HR backend per user.
// Records whose date cannot be parsed are never stored.
type SnapshotRepository interface {
	// ReplaceRange swaps every stored record of userID dated within [from, to] for records
	ReplaceRange(ctx context.Context, userID string, from, to time.Time, records []ShiftRecord) error

	// ListRange returns stored records of userID dated within [from, to], oldest first
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]ShiftRecord, error)

	// ListTrackedUsers returns every user that has at least one stored record
	ListTrackedUsers(ctx context.Context) ([]string, error)

	CreateSyncRun(ctx context.Context, run SyncRun) error
}

// SalarySource fetches salary data from the HR backend.
type SalarySource interface {
	DailySalary(ctx context.Context, userID string, from, to time.Time) ([]ShiftRecord, error)
	MonthlyHistory(ctx context.Context, userID string) ([]MonthlySalary, error)
}
