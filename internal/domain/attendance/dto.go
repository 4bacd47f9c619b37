package attendance

import (
	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/validator"
)

type ListAttendanceRequest struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (r *ListAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	Status  string  `json:"status"`
	TimeIn  *string `json:"time_in,omitempty"`
	TimeOut *string `json:"time_out,omitempty"`
}
