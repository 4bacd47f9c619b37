package payroll

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/employee"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/payroll"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/request"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/settings"
	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/validator"
)

const (
	testCompanyID  = "company-1"
	testEmployeeID = "employee-1"
)

// ========== STUBS ==========

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok || emp.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range s.employees {
		if emp.CompanyID == companyID {
			result = append(result, emp)
		}
	}
	return result, nil
}

type stubSettingsRepo struct {
	values map[string]string
}

func (s *stubSettingsRepo) GetAll(ctx context.Context, companyID string) (map[string]string, error) {
	return s.values, nil
}

func (s *stubSettingsRepo) Upsert(ctx context.Context, companyID string, key string, value string) (settings.Setting, error) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return settings.Setting{CompanyID: companyID, Key: key, Value: value}, nil
}

func (s *stubSettingsRepo) List(ctx context.Context, companyID string) ([]settings.Setting, error) {
	var result []settings.Setting
	for k, v := range s.values {
		result = append(result, settings.Setting{CompanyID: companyID, Key: k, Value: v})
	}
	return result, nil
}

type stubAttendanceRepo struct {
	records []attendance.Attendance
}

func (s *stubAttendanceRepo) ListByEmployeeRange(ctx context.Context, employeeID string, startDate, endDate time.Time, companyID string) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, rec := range s.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(startDate) && !rec.Date.After(endDate) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (s *stubAttendanceRepo) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

type stubRequestRepo struct {
	requests []request.Request
}

func (s *stubRequestRepo) ListApprovedByEmployeeRange(ctx context.Context, employeeID string, kind request.Kind, startDate, endDate time.Time, companyID string) ([]request.Request, error) {
	var result []request.Request
	for _, req := range s.requests {
		if req.EmployeeID == employeeID && req.Kind == kind {
			result = append(result, req)
		}
	}
	return result, nil
}

type stubPayrollRepo struct {
	records   []payroll.PayrollRecord
	summaries []payroll.WorkdaySummary
}

func (s *stubPayrollRepo) CreateRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	record.ID = "record-1"
	s.records = append(s.records, record)
	return record, nil
}

func (s *stubPayrollRepo) GetRecordByID(ctx context.Context, id string, companyID string) (payroll.PayrollRecord, error) {
	for _, r := range s.records {
		if r.ID == id && r.CompanyID == companyID {
			return r, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (s *stubPayrollRepo) GetRecordByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time, companyID string) (payroll.PayrollRecord, error) {
	for _, r := range s.records {
		if r.EmployeeID == employeeID && r.PeriodStart.Equal(periodStart) && r.PeriodEnd.Equal(periodEnd) {
			return r, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (s *stubPayrollRepo) ListRecords(ctx context.Context, companyID string, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	return s.records, int64(len(s.records)), nil
}

func (s *stubPayrollRepo) UpsertWorkdaySummary(ctx context.Context, summary payroll.WorkdaySummary) (payroll.WorkdaySummary, error) {
	summary.ID = "workday-1"
	s.summaries = append(s.summaries, summary)
	return summary, nil
}

func (s *stubPayrollRepo) GetWorkdaySummary(ctx context.Context, employeeID string, periodStart, periodEnd time.Time, companyID string) (payroll.WorkdaySummary, error) {
	for _, ws := range s.summaries {
		if ws.EmployeeID == employeeID {
			return ws, nil
		}
	}
	return payroll.WorkdaySummary{}, payroll.ErrWorkdaySummaryNotFound
}

// ========== FIXTURES ==========

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"company_id": testCompanyID,
		"user_id":    "user-1",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func testService(attRecords []attendance.Attendance, reqs []request.Request, settingValues map[string]string) (payroll.PayrollService, *stubPayrollRepo) {
	payrollRepo := &stubPayrollRepo{}
	svc := NewPayrollService(
		nil,
		payrollRepo,
		&stubEmployeeRepo{employees: map[string]employee.Employee{
			testEmployeeID: {
				ID:             testEmployeeID,
				CompanyID:      testCompanyID,
				BasicSalary:    decimal.NewFromInt(1000),
				SalaryRateType: employee.SalaryRateDaily,
			},
		}},
		&stubAttendanceRepo{records: attRecords},
		&stubRequestRepo{requests: reqs},
		&stubSettingsRepo{values: settingValues},
	)

	// No real database behind the stubs; run the transactional section
	// directly.
	svc.(*PayrollServiceImpl).withTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}

	return svc, payrollRepo
}

func periodAttendance(days int) []attendance.Attendance {
	var records []attendance.Attendance
	for day := 1; day <= days; day++ {
		in := time.Date(2025, 3, day, 8, 0, 0, 0, time.UTC)
		out := time.Date(2025, 3, day, 20, 0, 0, 0, time.UTC)
		records = append(records, attendance.Attendance{
			ID:         "att-" + string(rune('0'+day)),
			EmployeeID: testEmployeeID,
			CompanyID:  testCompanyID,
			Date:       time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusPresent,
			TimeIn:     &in,
			TimeOut:    &out,
		})
	}
	return records
}

// ========== TESTS ==========

func TestPayrollService_PreviewPayroll_Success(t *testing.T) {
	svc, _ := testService(periodAttendance(5), nil, nil)
	ctx := authedContext(t)

	result, err := svc.PreviewPayroll(ctx, payroll.PreviewPayrollRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-06",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Summary.WorkDays)
	assert.True(t, result.Summary.NetPay.Equal(decimal.NewFromInt(5000)), "net %s", result.Summary.NetPay)
	assert.Len(t, result.DailyBreakdown, 5)
	assert.True(t, result.FormulasUsed.OvertimeMultiplier.Equal(decimal.RequireFromString("1.25")))
}

func TestPayrollService_PreviewPayroll_Idempotent(t *testing.T) {
	svc, _ := testService(periodAttendance(5), nil, nil)
	ctx := authedContext(t)
	req := payroll.PreviewPayrollRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-06",
	}

	first, err := svc.PreviewPayroll(ctx, req)
	require.NoError(t, err)
	second, err := svc.PreviewPayroll(ctx, req)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestPayrollService_PreviewPayroll_ValidationError(t *testing.T) {
	svc, _ := testService(nil, nil, nil)
	ctx := authedContext(t)

	_, err := svc.PreviewPayroll(ctx, payroll.PreviewPayrollRequest{
		EmployeeID: "",
		StartDate:  "soon",
		EndDate:    "2025-03-06",
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestPayrollService_PreviewPayroll_EmployeeNotFound(t *testing.T) {
	svc, _ := testService(nil, nil, nil)
	ctx := authedContext(t)

	_, err := svc.PreviewPayroll(ctx, payroll.PreviewPayrollRequest{
		EmployeeID: "ghost",
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-06",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPayrollService_PreviewPayroll_NoClaims(t *testing.T) {
	svc, _ := testService(nil, nil, nil)

	_, err := svc.PreviewPayroll(context.Background(), payroll.PreviewPayrollRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-06",
	})

	assert.Error(t, err)
}

func TestPayrollService_GeneratePayroll_PersistsRecordAndSummary(t *testing.T) {
	svc, payrollRepo := testService(periodAttendance(5), nil, nil)
	ctx := authedContext(t)

	result, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-06",
	})
	require.NoError(t, err)

	assert.Equal(t, "record-1", result.Record.ID)
	assert.Equal(t, string(payroll.PayrollStatusDraft), result.Record.Status)
	assert.True(t, result.Record.NetPay.Equal(decimal.NewFromInt(5000)), "net %s", result.Record.NetPay)
	assert.Equal(t, 5, result.WorkdaySummary.TotalWorkdays)
	assert.Equal(t, 5, result.WorkdaySummary.DaysPresent)

	// Statutory lines computed on gross 5000: PhilHealth clamps its base up
	// to the 10000 floor.
	assert.True(t, result.Statutory.SSS.Equal(decimal.NewFromInt(225)), "sss %s", result.Statutory.SSS)
	assert.True(t, result.Statutory.Philhealth.Equal(decimal.NewFromInt(250)), "philhealth %s", result.Statutory.Philhealth)

	require.Len(t, payrollRepo.records, 1)
	require.Len(t, payrollRepo.summaries, 1)
}

func TestPayrollService_GeneratePayroll_DuplicatePeriodConflicts(t *testing.T) {
	svc, _ := testService(periodAttendance(5), nil, nil)
	ctx := authedContext(t)
	req := payroll.GeneratePayrollRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-06",
	}

	_, err := svc.GeneratePayroll(ctx, req)
	require.NoError(t, err)

	_, err = svc.GeneratePayroll(ctx, req)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordAlreadyExists)
}

func TestPayrollService_GetStatutoryEstimate_UsesReportingVariant(t *testing.T) {
	svc, _ := testService(periodAttendance(5), nil, nil)
	ctx := authedContext(t)

	generated, err := svc.GeneratePayroll(ctx, payroll.GeneratePayrollRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-06",
	})
	require.NoError(t, err)

	estimate, err := svc.GetStatutoryEstimate(ctx, generated.Record.ID)
	require.NoError(t, err)

	// Flat 9.5% on gross 5000, very different from the 225 deducted at
	// generation time.
	assert.True(t, estimate.SSS.Equal(decimal.NewFromInt(475)), "sss %s", estimate.SSS)
}

func TestPayrollService_UpdateSetting_ChangesNextCalculation(t *testing.T) {
	svc, _ := testService(periodAttendance(1), nil, map[string]string{})
	ctx := authedContext(t)

	before, err := svc.PreviewPayroll(ctx, payroll.PreviewPayrollRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-02",
	})
	require.NoError(t, err)
	assert.True(t, before.Summary.DailyWage.Equal(decimal.NewFromInt(1000)))

	_, err = svc.UpdateSetting(ctx, payroll.UpdateSettingRequest{
		Key:   "override_daily_wage",
		Value: "1500",
	})
	require.NoError(t, err)

	after, err := svc.PreviewPayroll(ctx, payroll.PreviewPayrollRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-02",
	})
	require.NoError(t, err)
	assert.True(t, after.Summary.DailyWage.Equal(decimal.NewFromInt(1500)), "wage %s", after.Summary.DailyWage)
}
