package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time, companyID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, status,
			   time_in, time_out, extra, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND company_id = $2
		  AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, status,
			   time_in, time_out, extra, created_at, updated_at
		FROM attendances
		WHERE id = $1 AND company_id = $2
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttendance(row rowScanner) (attendance.Attendance, error) {
	var (
		rec      attendance.Attendance
		extraRaw []byte
	)
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date, &rec.Status,
		&rec.TimeIn, &rec.TimeOut, &extraRaw, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, err
		}
		return attendance.Attendance{}, fmt.Errorf("failed to scan attendance: %w", err)
	}

	if len(extraRaw) > 0 {
		if err := json.Unmarshal(extraRaw, &rec.Extra); err != nil {
			// Legacy import data; a broken blob just means no overrides.
			rec.Extra = nil
		}
	}

	return rec, nil
}
