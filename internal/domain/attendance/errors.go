package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidDateRange   = errors.New("invalid attendance date range")
)
