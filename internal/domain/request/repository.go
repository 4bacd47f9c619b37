package request

import (
	"context"
	"time"
)

// RequestRepository defines data access methods for overtime/undertime requests.
type RequestRepository interface {
	// ListApprovedByEmployeeRange returns approved requests of the given kind
	// with startDate <= work_date <= endDate, ordered by work_date ascending.
	ListApprovedByEmployeeRange(ctx context.Context, employeeID string, kind Kind, startDate, endDate time.Time, companyID string) ([]Request, error)
}
