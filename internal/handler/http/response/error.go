package response

import (
	"errors"
	"net/http"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/employee"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/payroll"
	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)
	case errors.Is(err, employee.ErrMissingBasicSalary):
		BadRequest(w, "Employee has no basic salary configured", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Invalid attendance date range", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrMissingPeriod):
		BadRequest(w, "Payroll period start and end dates are required", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrZeroPaidHours):
		UnprocessableEntity(w, "Paid hours per day resolves to zero; check work and lunch hour settings")
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrWorkdaySummaryNotFound):
		NotFound(w, "Workday summary not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
