package attendance

import (
	"time"
)

// Attendance statuses as recorded by the attendance module. Anything other
// than "absent" counts as a work day for payroll purposes.
const (
	StatusPresent   = "present"
	StatusAbsent    = "absent"
	StatusLate      = "late"
	StatusLeave     = "leave"
	StatusUndertime = "undertime"
)

type Attendance struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	Status     string
	TimeIn     *time.Time
	TimeOut    *time.Time

	// Extra carries legacy columns imported from the old attendance system
	// (jsonb). Known keys: late_minutes/late_min/late,
	// undertime_minutes/undertime_min/undertime, totalwork,
	// absent_minutes/absent_min/absent. Values there override punch-derived
	// minutes during payroll calculation.
	Extra map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}
