package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-salary-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func shift(date, name, total string) payroll.ShiftRecord {
	return payroll.ShiftRecord{
		Date:               date,
		ShiftName:          name,
		ShiftDurationHours: decimal.NewFromInt(8),
		ShiftMultiplier:    decimal.NewFromInt(1),
		HoursWorked:        decimal.NewFromInt(8),
		RegularHours:       decimal.NewFromInt(8),
		OvertimeHours:      decimal.Zero,
		SalaryRate:         decimal.NewFromInt(100),
		RegularAmount:      decimal.RequireFromString(total),
		OvertimeAmount:     decimal.Zero,
		TotalAmount:        decimal.RequireFromString(total),
	}
}

func TestSalarySnapshotRepository_ReplaceAndList(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewSalarySnapshotRepository(setup.DB)
	ctx := context.Background()

	checkin := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)
	first := shift("2025-01-02T00:00:00", "Morning", "800")
	first.CheckinTime = &checkin

	err := repo.ReplaceRange(ctx, "u-1", day("2025-01-01"), day("2025-01-31"), []payroll.ShiftRecord{
		first,
		shift("2025-01-02", "Evening", "900"),
		shift("not a date", "Lost", "1"),
		shift("2025-02-10", "Outside", "1"),
	})
	require.NoError(t, err)

	got, err := repo.ListRange(ctx, "u-1", day("2025-01-01"), day("2025-01-31"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Morning", got[0].ShiftName)
	assert.Equal(t, "Evening", got[1].ShiftName)
	assert.True(t, got[1].TotalAmount.Equal(decimal.NewFromInt(900)))
	require.NotNil(t, got[0].CheckinTime)
	assert.True(t, got[0].CheckinTime.Equal(checkin))
	assert.Nil(t, got[0].CheckoutTime)

	// replacing the range drops what was stored before
	err = repo.ReplaceRange(ctx, "u-1", day("2025-01-01"), day("2025-01-31"), []payroll.ShiftRecord{
		shift("2025-01-05", "Night", "1000"),
	})
	require.NoError(t, err)

	got, err = repo.ListRange(ctx, "u-1", day("2025-01-01"), day("2025-01-31"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Night", got[0].ShiftName)
}

func TestSalarySnapshotRepository_TrackedUsersAndRuns(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewSalarySnapshotRepository(setup.DB)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceRange(ctx, "u-2", day("2025-01-01"), day("2025-01-31"), []payroll.ShiftRecord{
		shift("2025-01-03", "Morning", "800"),
	}))

	runID, err := uuid.NewV7()
	require.NoError(t, err)
	require.NoError(t, repo.CreateSyncRun(ctx, payroll.SyncRun{
		ID:        runID.String(),
		UserID:    "u-1",
		From:      day("2025-01-01"),
		To:        day("2025-01-31"),
		CreatedAt: time.Now(),
	}))

	users, err := repo.ListTrackedUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u-1", "u-2"}, users)
}
