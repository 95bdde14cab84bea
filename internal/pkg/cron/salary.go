package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/utils"
)

type SalaryJobs struct {
	payrollService payroll.PayrollService
	snapshotRepo   payroll.SnapshotRepository
	lookbackDays   int
	now            func() time.Time
}

func NewSalaryJobs(
	payrollService payroll.PayrollService,
	snapshotRepo payroll.SnapshotRepository,
	lookbackDays int,
) *SalaryJobs {
	if lookbackDays < 1 {
		lookbackDays = 1
	}
	return &SalaryJobs{
		payrollService: payrollService,
		snapshotRepo:   snapshotRepo,
		lookbackDays:   lookbackDays,
		now:            time.Now,
	}
}

func (j *SalaryJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("refresh_salary_snapshots", interval, j.RefreshSalarySnapshots)
}

// RefreshSalarySnapshots re-fetches the last lookbackDays days, today included,
// for every user that already has a snapshot.
func (j *SalaryJobs) RefreshSalarySnapshots(ctx context.Context) error {
	slog.Info("Cron: Starting refresh salary snapshots job")

	users, err := j.snapshotRepo.ListTrackedUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tracked users: %w", err)
	}

	today := utils.StartOfDay(j.now().UTC())
	from := today.AddDate(0, 0, -(j.lookbackDays - 1)).Format(utils.DateLayout)
	to := today.Format(utils.DateLayout)

	refreshed, failed := 0, 0
	for _, userID := range users {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		result, err := j.payrollService.SyncUser(ctx, payroll.DailySalaryFilter{UserID: userID, From: from, To: to})
		if err != nil {
			slog.Error("Cron: Failed to refresh salary snapshot", "user_id", userID, "error", err)
			failed++
			continue
		}
		slog.Debug("Cron: Salary snapshot refreshed", "user_id", userID, "run_id", result.RunID, "records", result.RecordCount)
		refreshed++
	}

	slog.Info("Cron: Refresh salary snapshots completed", "refreshed", refreshed, "failed", failed, "from", from, "to", to)
	if failed > 0 {
		return fmt.Errorf("%d of %d salary snapshot refreshes failed", failed, len(users))
	}
	return nil
}
