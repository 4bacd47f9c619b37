package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/request"
	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/database"
)

type requestRepository struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) ListApprovedByEmployeeRange(ctx context.Context, employeeID string, kind request.Kind, startDate, endDate time.Time, companyID string) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, kind, work_date, hours, status, reason, created_at, updated_at
		FROM time_requests
		WHERE employee_id = $1
		  AND company_id = $2
		  AND kind = $3
		  AND status = $4
		  AND work_date BETWEEN $5 AND $6
		ORDER BY work_date, created_at
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, kind, request.StatusApproved, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s requests: %w", kind, err)
	}
	defer rows.Close()

	var requests []request.Request
	for rows.Next() {
		var req request.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.CompanyID, &req.Kind, &req.WorkDate,
			&req.Hours, &req.Status, &req.Reason, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
