package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/utils"
	"github.com/jackc/pgx/v5"
)

type salarySnapshotRepositoryImpl struct {
	db *database.DB
}

func NewSalarySnapshotRepository(db *database.DB) payroll.SnapshotRepository {
	return &salarySnapshotRepositoryImpl{db: db}
}

// ReplaceRange implements payroll.SnapshotRepository.
func (r *salarySnapshotRepositoryImpl) ReplaceRange(ctx context.Context, userID string, from, to time.Time, records []payroll.ShiftRecord) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		deleteQuery := `
			DELETE FROM salary_shift_snapshots
			WHERE user_id = $1 AND work_date BETWEEN $2 AND $3
		`
		if _, err := tx.Exec(ctx, deleteQuery, userID, from, to); err != nil {
			return fmt.Errorf("failed to clear snapshot range: %w", err)
		}

		insertQuery := `
			INSERT INTO salary_shift_snapshots (
				user_id, work_date, position, raw_date,
				shift_name, shift_start_time, shift_end_time,
				shift_duration_hours, shift_multiplier,
				checkin_time, checkout_time,
				hours_worked, regular_hours, overtime_hours,
				salary_rate, regular_amount, overtime_amount, total_amount
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		`

		batch := &pgx.Batch{}
		for i, rec := range records {
			day, ok := utils.ParseDate(rec.Date)
			if !ok || day.Before(from) || day.After(to) {
				continue
			}
			batch.Queue(insertQuery,
				userID, day, i, rec.Date,
				rec.ShiftName, rec.ShiftStartTime, rec.ShiftEndTime,
				rec.ShiftDurationHours, rec.ShiftMultiplier,
				rec.CheckinTime, rec.CheckoutTime,
				rec.HoursWorked, rec.RegularHours, rec.OvertimeHours,
				rec.SalaryRate, rec.RegularAmount, rec.OvertimeAmount, rec.TotalAmount,
			)
		}
		if batch.Len() == 0 {
			return nil
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert snapshot records: %w", err)
		}
		return nil
	})
}

// ListRange implements payroll.SnapshotRepository.
func (r *salarySnapshotRepositoryImpl) ListRange(ctx context.Context, userID string, from, to time.Time) ([]payroll.ShiftRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT raw_date,
			   shift_name, shift_start_time, shift_end_time,
			   shift_duration_hours, shift_multiplier,
			   checkin_time, checkout_time,
			   hours_worked, regular_hours, overtime_hours,
			   salary_rate, regular_amount, overtime_amount, total_amount
		FROM salary_shift_snapshots
		WHERE user_id = $1 AND work_date BETWEEN $2 AND $3
		ORDER BY work_date, position
	`
	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	records := make([]payroll.ShiftRecord, 0)
	for rows.Next() {
		var rec payroll.ShiftRecord
		if err := rows.Scan(
			&rec.Date,
			&rec.ShiftName, &rec.ShiftStartTime, &rec.ShiftEndTime,
			&rec.ShiftDurationHours, &rec.ShiftMultiplier,
			&rec.CheckinTime, &rec.CheckoutTime,
			&rec.HoursWorked, &rec.RegularHours, &rec.OvertimeHours,
			&rec.SalaryRate, &rec.RegularAmount, &rec.OvertimeAmount, &rec.TotalAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListTrackedUsers implements payroll.SnapshotRepository.
func (r *salarySnapshotRepositoryImpl) ListTrackedUsers(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT user_id FROM salary_shift_snapshots
		UNION
		SELECT user_id FROM sync_runs
		ORDER BY user_id
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracked users: %w", err)
	}
	defer rows.Close()

	users, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect tracked users: %w", err)
	}
	return users, nil
}

// CreateSyncRun implements payroll.SnapshotRepository.
func (r *salarySnapshotRepositoryImpl) CreateSyncRun(ctx context.Context, run payroll.SyncRun) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO sync_runs (id, user_id, range_from, range_to, record_count, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := q.Exec(ctx, query, run.ID, run.UserID, run.From, run.To, run.RecordCount, run.Error, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record sync run: %w", err)
	}
	return nil
}
