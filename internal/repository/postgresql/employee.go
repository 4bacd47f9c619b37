package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/employee"
	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, company_id, full_name, employee_code, position_name,
	basic_salary, salary_rate_type, is_active, created_at, updated_at
`

func (r *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE id = $1 AND company_id = $2
	`, employeeColumns)

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&emp.ID, &emp.CompanyID, &emp.FullName, &emp.EmployeeCode, &emp.PositionName,
		&emp.BasicSalary, &emp.SalaryRateType, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE company_id = $1 AND is_active = true
		ORDER BY employee_code
	`, employeeColumns)

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.CompanyID, &emp.FullName, &emp.EmployeeCode, &emp.PositionName,
			&emp.BasicSalary, &emp.SalaryRateType, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}
