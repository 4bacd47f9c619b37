package payroll

import "errors"

var (
	ErrMissingPeriod              = errors.New("payroll period start and end dates are required")
	ErrInvalidPeriod              = errors.New("invalid payroll period")
	ErrZeroPaidHours              = errors.New("paid hours per day resolves to zero")
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrWorkdaySummaryNotFound     = errors.New("workday summary not found")
)
