package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRateType enum - how BasicSalary is expressed
type SalaryRateType string

const (
	SalaryRateMonthly SalaryRateType = "monthly"
	SalaryRateWeekly  SalaryRateType = "weekly"
	SalaryRateDaily   SalaryRateType = "daily"
	SalaryRateHourly  SalaryRateType = "hourly"
)

// IsValidSalaryRateType reports whether s is a known rate type.
func IsValidSalaryRateType(s string) bool {
	switch SalaryRateType(s) {
	case SalaryRateMonthly, SalaryRateWeekly, SalaryRateDaily, SalaryRateHourly:
		return true
	}
	return false
}

type Employee struct {
	ID             string
	CompanyID      string
	FullName       string
	EmployeeCode   string
	PositionName   *string
	BasicSalary    decimal.Decimal
	SalaryRateType SalaryRateType
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CompensationProfile is the immutable snapshot the payroll engine
// calculates from. Read once at calculation start.
type CompensationProfile struct {
	BasicSalary    decimal.Decimal
	SalaryRateType SalaryRateType
}

// Compensation returns the employee's compensation snapshot.
func (e Employee) Compensation() CompensationProfile {
	return CompensationProfile{
		BasicSalary:    e.BasicSalary,
		SalaryRateType: e.SalaryRateType,
	}
}
