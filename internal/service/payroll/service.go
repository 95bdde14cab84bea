package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/hrapi"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	source    payroll.SalarySource
	snapshots payroll.SnapshotRepository
	formatter *payroll.CurrencyFormatter
	now       func() time.Time
}

func NewPayrollService(
	source payroll.SalarySource,
	snapshots payroll.SnapshotRepository,
	formatter *payroll.CurrencyFormatter,
) payroll.PayrollService {
	if formatter == nil {
		formatter = payroll.NewCurrencyFormatter("vi-VN", "đ")
	}
	return &PayrollServiceImpl{
		source:    source,
		snapshots: snapshots,
		formatter: formatter,
		now:       time.Now,
	}
}

// authorize lets callers read their own salary; managers and owners may read anyone's
func authorize(ctx context.Context, userID string) error {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return err
	}
	if !principal.CanRead(userID) {
		return payroll.ErrSalaryAccessDenied
	}
	return nil
}

func (s *PayrollServiceImpl) prepare(ctx context.Context, filter *payroll.DailySalaryFilter) error {
	filter.ApplyDefaults(s.now())
	if err := filter.Validate(); err != nil {
		return err
	}
	return authorize(ctx, filter.UserID)
}

// ========== DAILY ==========

func (s *PayrollServiceImpl) GetDailySalary(ctx context.Context, filter payroll.DailySalaryFilter) (payroll.DailySalaryResponse, error) {
	if err := s.prepare(ctx, &filter); err != nil {
		return payroll.DailySalaryResponse{}, err
	}
	return s.dailySalary(ctx, filter)
}

func (s *PayrollServiceImpl) dailySalary(ctx context.Context, filter payroll.DailySalaryFilter) (payroll.DailySalaryResponse, error) {
	records, stale, err := s.loadDaily(ctx, filter)
	if err != nil {
		return payroll.DailySalaryResponse{}, err
	}

	groups := payroll.GroupByDate(records)
	resp := payroll.DailySalaryResponse{
		UserID:  filter.UserID,
		From:    filter.From,
		To:      filter.To,
		Stale:   stale,
		Groups:  make([]payroll.DailySalaryGroupResponse, 0, len(groups)),
		Summary: s.toSummaryResponse(payroll.Summarize(records)),
	}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, s.toGroupResponse(g))
	}
	return resp, nil
}

// loadDaily fetches from the HR backend and refreshes the snapshot, serving the
// stored snapshot instead when the backend is unavailable.
func (s *PayrollServiceImpl) loadDaily(ctx context.Context, filter payroll.DailySalaryFilter) ([]payroll.ShiftRecord, bool, error) {
	from, to := filter.Range()

	records, err := s.source.DailySalary(ctx, filter.UserID, from, to)
	if err == nil {
		if s.snapshots != nil {
			if err := s.snapshots.ReplaceRange(ctx, filter.UserID, from, to, records); err != nil {
				slog.Warn("failed to store salary snapshot", "user_id", filter.UserID, "error", err)
			}
		}
		return records, false, nil
	}
	if errors.Is(err, hrapi.ErrUnauthorized) || errors.Is(err, context.Canceled) {
		return nil, false, err
	}

	slog.Warn("salary source unavailable, trying snapshot", "user_id", filter.UserID, "error", err)
	if s.snapshots == nil {
		return nil, false, fmt.Errorf("%w: %w", payroll.ErrSalarySourceFailure, err)
	}

	stored, snapErr := s.snapshots.ListRange(ctx, filter.UserID, from, to)
	if snapErr != nil {
		slog.Error("failed to read salary snapshot", "user_id", filter.UserID, "error", snapErr)
		return nil, false, fmt.Errorf("%w: %w", payroll.ErrSalarySourceFailure, err)
	}
	if len(stored) == 0 {
		return nil, false, fmt.Errorf("%w: %w: %w", payroll.ErrSalarySourceFailure, payroll.ErrSnapshotNotFound, err)
	}
	return stored, true, nil
}

func (s *PayrollServiceImpl) ExportDailySalary(ctx context.Context, filter payroll.DailySalaryFilter) ([]byte, error) {
	if err := s.prepare(ctx, &filter); err != nil {
		return nil, err
	}

	records, _, err := s.loadDaily(ctx, filter)
	if err != nil {
		return nil, err
	}

	data, err := export.DailySalaryWorkbook(payroll.GroupByDate(records))
	if err != nil {
		return nil, fmt.Errorf("failed to export daily salary: %w", err)
	}
	return data, nil
}

// ========== MONTHLY ==========

func (s *PayrollServiceImpl) GetMonthlyHistory(ctx context.Context, userID string) ([]payroll.MonthlySalaryResponse, error) {
	if err := authorize(ctx, userID); err != nil {
		return nil, err
	}
	return s.monthlyHistory(ctx, userID)
}

func (s *PayrollServiceImpl) monthlyHistory(ctx context.Context, userID string) ([]payroll.MonthlySalaryResponse, error) {
	history, err := s.source.MonthlyHistory(ctx, userID)
	if err != nil {
		if errors.Is(err, hrapi.ErrUnauthorized) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", payroll.ErrSalarySourceFailure, err)
	}

	sorted := payroll.SortMonthlyHistory(history)
	resp := make([]payroll.MonthlySalaryResponse, 0, len(sorted))
	for _, m := range sorted {
		resp = append(resp, s.toMonthlyResponse(payroll.ResolveNetSalary(m)))
	}
	return resp, nil
}

// ========== OVERVIEW ==========

func (s *PayrollServiceImpl) GetOverview(ctx context.Context, filter payroll.DailySalaryFilter) (payroll.OverviewResponse, error) {
	if err := s.prepare(ctx, &filter); err != nil {
		return payroll.OverviewResponse{}, err
	}

	var overview payroll.OverviewResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		daily, err := s.dailySalary(gctx, filter)
		if err != nil {
			return err
		}
		overview.Daily = daily
		return nil
	})
	g.Go(func() error {
		monthly, err := s.monthlyHistory(gctx, filter.UserID)
		if err != nil {
			return err
		}
		overview.Monthly = monthly
		return nil
	})
	if err := g.Wait(); err != nil {
		return payroll.OverviewResponse{}, err
	}

	return overview, nil
}

// ========== SYNC ==========

// SyncUser refreshes the snapshot of one user. Callers are authorized by the
// router or run as the background job.
func (s *PayrollServiceImpl) SyncUser(ctx context.Context, filter payroll.DailySalaryFilter) (payroll.SyncResult, error) {
	if s.snapshots == nil {
		return payroll.SyncResult{}, errors.New("salary snapshot store is not configured")
	}
	filter.ApplyDefaults(s.now())
	if err := filter.Validate(); err != nil {
		return payroll.SyncResult{}, err
	}
	from, to := filter.Range()

	runID, err := uuid.NewV7()
	if err != nil {
		return payroll.SyncResult{}, fmt.Errorf("failed to generate sync run id: %w", err)
	}
	run := payroll.SyncRun{
		ID:        runID.String(),
		UserID:    filter.UserID,
		From:      from,
		To:        to,
		CreatedAt: s.now(),
	}

	records, fetchErr := s.source.DailySalary(ctx, filter.UserID, from, to)
	if fetchErr == nil {
		fetchErr = s.snapshots.ReplaceRange(ctx, filter.UserID, from, to, records)
	}
	if fetchErr != nil {
		msg := fetchErr.Error()
		run.Error = &msg
	} else {
		run.RecordCount = countStorable(records, from, to)
	}

	if err := s.snapshots.CreateSyncRun(ctx, run); err != nil {
		slog.Error("failed to record sync run", "run_id", run.ID, "user_id", run.UserID, "error", err)
	}

	if fetchErr != nil {
		return payroll.SyncResult{}, fmt.Errorf("%w: %w", payroll.ErrSalarySourceFailure, fetchErr)
	}

	return payroll.SyncResult{
		RunID:       run.ID,
		UserID:      filter.UserID,
		From:        filter.From,
		To:          filter.To,
		RecordCount: run.RecordCount,
	}, nil
}

// countStorable counts records the snapshot keeps: dated and within range
func countStorable(records []payroll.ShiftRecord, from, to time.Time) int {
	count := 0
	for _, r := range records {
		day, ok := utils.ParseDate(r.Date)
		if ok && !day.Before(from) && !day.After(to) {
			count++
		}
	}
	return count
}
