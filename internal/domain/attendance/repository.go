package attendance

import (
	"context"
	"time"
)

// AttendanceSource fetches the caller's attendance from the HR backend.
// The caller is identified by the bearer token carried in ctx.
type AttendanceSource interface {
	MyAttendance(ctx context.Context, from, to time.Time) ([]Record, error)
}
