package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind enum - what the employee requested
type Kind string

const (
	KindOvertime  Kind = "overtime"
	KindUndertime Kind = "undertime"
)

// Status enum
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request - an overtime or undertime request filed by an employee. Only
// approved requests reach the payroll engine.
type Request struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Kind       Kind
	WorkDate   time.Time
	Hours      decimal.Decimal
	Status     Status
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
