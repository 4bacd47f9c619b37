package attendance

import (
	"context"
)

// AttendanceService defines read access to attendance records for payroll
// review. Capturing punches is the attendance module's job, not this
// service's.
type AttendanceService interface {
	ListByRange(ctx context.Context, req ListAttendanceRequest) ([]AttendanceResponse, error)
}
