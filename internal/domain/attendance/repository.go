package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// All methods include companyID parameter to prevent cross-company data access.
type AttendanceRepository interface {
	// ListByEmployeeRange returns the employee's records with
	// startDate <= date <= endDate, ordered by date ascending. One record per
	// employee per date; uniqueness is enforced by the attendance module.
	ListByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time, companyID string) ([]Attendance, error)

	GetByID(ctx context.Context, id string, companyID string) (Attendance, error)
}
