package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/hrapi"
	"github.com/cmlabs-hris/hris-salary-go/internal/pkg/jwt"
)

type AttendanceServiceImpl struct {
	source attendance.AttendanceSource
	now    func() time.Time
}

func NewAttendanceService(source attendance.AttendanceSource) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		source: source,
		now:    time.Now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	now := a.now()
	filter.ApplyDefaults(now)
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	from, to := filter.Range()
	records, err := a.source.MyAttendance(ctx, from, to)
	if err != nil {
		if errors.Is(err, attendance.ErrMissingUpstreamToken) || errors.Is(err, hrapi.ErrUnauthorized) {
			return attendance.ListAttendanceResponse{}, err
		}
		slog.Warn("attendance source unavailable", "user_id", principal.UserID, "error", err)
		return attendance.ListAttendanceResponse{}, fmt.Errorf("%w: %w", attendance.ErrAttendanceUnavailable, err)
	}

	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		status := attendance.Classify(r, now)
		data = append(data, attendance.AttendanceResponse{
			Date:           r.Date,
			ShiftName:      r.ShiftName,
			ShiftStartTime: r.ShiftStartTime,
			ShiftEndTime:   r.ShiftEndTime,
			CheckinTime:    timePtrToString(r.CheckinTime),
			CheckoutTime:   timePtrToString(r.CheckoutTime),
			Status:         status,
			StatusLabel:    attendance.Label(status),
		})
	}

	return attendance.ListAttendanceResponse{
		From:    filter.From,
		To:      filter.To,
		Data:    data,
		Summary: attendance.CountByStatus(records, now),
	}, nil
}
