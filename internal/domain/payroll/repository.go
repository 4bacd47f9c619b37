package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll results.
// All methods include companyID parameter to prevent cross-company data access.
type PayrollRepository interface {
	// Records
	CreateRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetRecordByID(ctx context.Context, id string, companyID string) (PayrollRecord, error)
	GetRecordByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time, companyID string) (PayrollRecord, error)
	ListRecords(ctx context.Context, companyID string, filter PayrollFilter) ([]PayrollRecord, int64, error)

	// Workday summaries
	UpsertWorkdaySummary(ctx context.Context, summary WorkdaySummary) (WorkdaySummary, error)
	GetWorkdaySummary(ctx context.Context, employeeID string, periodStart, periodEnd time.Time, companyID string) (WorkdaySummary, error)
}
