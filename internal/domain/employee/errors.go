package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeInactive   = errors.New("employee is not active")
	ErrInvalidSalaryRate  = errors.New("invalid salary rate type")
	ErrMissingBasicSalary = errors.New("employee has no basic salary configured")
)
