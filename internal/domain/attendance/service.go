package attendance

import (
	"context"
)

// AttendanceService defines attendance read operations for the mobile app
type AttendanceService interface {
	// GetMyAttendance retrieves and classifies the authenticated user's attendance
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)
}
