package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceUnavailable = errors.New("attendance data is temporarily unavailable")
	ErrMissingUpstreamToken  = errors.New("a bearer token is required to read your attendance")
)
