package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/payroll"
	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== RECORDS ==========

func (r *payrollRepository) CreateRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, company_id, period_start, period_end,
			basic_salary, base_pay, gross_pay, total_overtime_hours,
			overtime_pay, deductions, net_pay, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, employee_id, company_id, period_start, period_end,
			basic_salary, base_pay, gross_pay, total_overtime_hours,
			overtime_pay, deductions, net_pay, status, created_at, updated_at
	`

	var created payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.CompanyID, record.PeriodStart, record.PeriodEnd,
		record.BasicSalary, record.BasePay, record.GrossPay, record.TotalOvertimeHours,
		record.OvertimePay, record.Deductions, record.NetPay, record.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.CompanyID, &created.PeriodStart, &created.PeriodEnd,
		&created.BasicSalary, &created.BasePay, &created.GrossPay, &created.TotalOvertimeHours,
		&created.OvertimePay, &created.Deductions, &created.NetPay, &created.Status,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetRecordByID(ctx context.Context, id string, companyID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.company_id, p.period_start, p.period_end,
			   p.basic_salary, p.base_pay, p.gross_pay, p.total_overtime_hours,
			   p.overtime_pay, p.deductions, p.net_pay, p.status,
			   p.created_at, p.updated_at,
			   e.full_name, e.employee_code
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1 AND p.company_id = $2
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.PeriodStart, &rec.PeriodEnd,
		&rec.BasicSalary, &rec.BasePay, &rec.GrossPay, &rec.TotalOvertimeHours,
		&rec.OvertimePay, &rec.Deductions, &rec.NetPay, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetRecordByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time, companyID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, period_start, period_end,
			   basic_salary, base_pay, gross_pay, total_overtime_hours,
			   overtime_pay, deductions, net_pay, status, created_at, updated_at
		FROM payroll_records
		WHERE employee_id = $1 AND company_id = $2
		  AND period_start = $3 AND period_end = $4
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, employeeID, companyID, periodStart, periodEnd).Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.PeriodStart, &rec.PeriodEnd,
		&rec.BasicSalary, &rec.BasePay, &rec.GrossPay, &rec.TotalOvertimeHours,
		&rec.OvertimePay, &rec.Deductions, &rec.NetPay, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record by period: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) ListRecords(ctx context.Context, companyID string, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"p.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var totalCount int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM payroll_records p WHERE %s", where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	query := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.company_id, p.period_start, p.period_end,
			   p.basic_salary, p.base_pay, p.gross_pay, p.total_overtime_hours,
			   p.overtime_pay, p.deductions, p.net_pay, p.status,
			   p.created_at, p.updated_at,
			   e.full_name, e.employee_code
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.period_start DESC, e.employee_code
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.PeriodStart, &rec.PeriodEnd,
			&rec.BasicSalary, &rec.BasePay, &rec.GrossPay, &rec.TotalOvertimeHours,
			&rec.OvertimePay, &rec.Deductions, &rec.NetPay, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeCode,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, rows.Err()
}

// ========== WORKDAY SUMMARIES ==========

func (r *payrollRepository) UpsertWorkdaySummary(ctx context.Context, summary payroll.WorkdaySummary) (payroll.WorkdaySummary, error) {
	q := GetQuerier(ctx, r.db)

	if summary.ID == "" {
		summary.ID = uuid.New().String()
	}

	query := `
		INSERT INTO workday_summaries (
			id, employee_id, company_id, period_start, period_end,
			total_workdays, days_present, days_absent, days_leave, days_late,
			total_hours_worked
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id, period_start, period_end) DO UPDATE SET
			total_workdays = EXCLUDED.total_workdays,
			days_present = EXCLUDED.days_present,
			days_absent = EXCLUDED.days_absent,
			days_leave = EXCLUDED.days_leave,
			days_late = EXCLUDED.days_late,
			total_hours_worked = EXCLUDED.total_hours_worked,
			updated_at = NOW()
		RETURNING id, employee_id, company_id, period_start, period_end,
			total_workdays, days_present, days_absent, days_leave, days_late,
			total_hours_worked, created_at, updated_at
	`

	var stored payroll.WorkdaySummary
	err := q.QueryRow(ctx, query,
		summary.ID, summary.EmployeeID, summary.CompanyID, summary.PeriodStart, summary.PeriodEnd,
		summary.TotalWorkdays, summary.DaysPresent, summary.DaysAbsent, summary.DaysLeave, summary.DaysLate,
		summary.TotalHoursWorked,
	).Scan(
		&stored.ID, &stored.EmployeeID, &stored.CompanyID, &stored.PeriodStart, &stored.PeriodEnd,
		&stored.TotalWorkdays, &stored.DaysPresent, &stored.DaysAbsent, &stored.DaysLeave, &stored.DaysLate,
		&stored.TotalHoursWorked, &stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		return payroll.WorkdaySummary{}, fmt.Errorf("failed to upsert workday summary: %w", err)
	}

	return stored, nil
}

func (r *payrollRepository) GetWorkdaySummary(ctx context.Context, employeeID string, periodStart, periodEnd time.Time, companyID string) (payroll.WorkdaySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, period_start, period_end,
			   total_workdays, days_present, days_absent, days_leave, days_late,
			   total_hours_worked, created_at, updated_at
		FROM workday_summaries
		WHERE employee_id = $1 AND company_id = $2
		  AND period_start = $3 AND period_end = $4
	`

	var stored payroll.WorkdaySummary
	err := q.QueryRow(ctx, query, employeeID, companyID, periodStart, periodEnd).Scan(
		&stored.ID, &stored.EmployeeID, &stored.CompanyID, &stored.PeriodStart, &stored.PeriodEnd,
		&stored.TotalWorkdays, &stored.DaysPresent, &stored.DaysAbsent, &stored.DaysLeave, &stored.DaysLate,
		&stored.TotalHoursWorked, &stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.WorkdaySummary{}, payroll.ErrWorkdaySummaryNotFound
		}
		return payroll.WorkdaySummary{}, fmt.Errorf("failed to get workday summary: %w", err)
	}

	return stored, nil
}
