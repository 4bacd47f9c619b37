package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/attendance"
)

const clockLayout = "15:04:05"

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

func (s *AttendanceServiceImpl) ListByRange(ctx context.Context, req attendance.ListAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return nil, attendance.ErrInvalidDateRange
	}

	records, err := s.attendanceRepo.ListByEmployeeRange(ctx, req.EmployeeID, start, end, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, attendance.AttendanceResponse{
			ID:      rec.ID,
			Date:    rec.Date.Format("2006-01-02"),
			Status:  rec.Status,
			TimeIn:  formatClock(rec.TimeIn),
			TimeOut: formatClock(rec.TimeOut),
		})
	}

	return result, nil
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(clockLayout)
	return &s
}
