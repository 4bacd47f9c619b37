package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/employee"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/payroll"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/request"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/settings"
	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/database"
	"github.com/sweldo-hr/sweldo-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	requestRepo    request.RequestRepository
	settingsRepo   settings.SettingsRepository

	// withTx runs fn inside one database transaction so the payroll record
	// and the workday summary commit or roll back together.
	withTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	requestRepo request.RequestRepository,
	settingsRepo settings.SettingsRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		requestRepo:    requestRepo,
		settingsRepo:   settingsRepo,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

// calculation bundles everything one pipeline run produced.
type calculation struct {
	emp       employee.Employee
	effective payroll.EffectiveSettings
	rates     payroll.RateSet
	basePay   decimal.Decimal
	summary   payroll.PeriodSummary
	entries   []payroll.DailyBreakdownEntry
	tally     payroll.WorkdayTally
	start     time.Time
	end       time.Time
}

// runPipeline executes the engine end to end for one employee and period.
// It performs no writes; both entry points share it.
func (s *PayrollServiceImpl) runPipeline(ctx context.Context, companyID, employeeID, startDate, endDate string) (calculation, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return calculation{}, err
	}

	raw, err := s.settingsRepo.GetAll(ctx, companyID)
	if err != nil {
		return calculation{}, fmt.Errorf("failed to load settings: %w", err)
	}
	effective := ResolveSettings(raw)

	rates, err := ResolveRates(emp.Compensation(), effective)
	if err != nil {
		return calculation{}, err
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return calculation{}, payroll.ErrMissingPeriod
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return calculation{}, payroll.ErrMissingPeriod
	}

	records, err := s.attendanceRepo.ListByEmployeeRange(ctx, emp.ID, start, end, companyID)
	if err != nil {
		return calculation{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	otRequests, err := s.requestRepo.ListApprovedByEmployeeRange(ctx, emp.ID, request.KindOvertime, start, end, companyID)
	if err != nil {
		return calculation{}, fmt.Errorf("failed to load overtime requests: %w", err)
	}
	utRequests, err := s.requestRepo.ListApprovedByEmployeeRange(ctx, emp.ID, request.KindUndertime, start, end, companyID)
	if err != nil {
		return calculation{}, fmt.Errorf("failed to load undertime requests: %w", err)
	}

	periodDays := PeriodDays(startDate, endDate)
	basePay := ComputeBasePay(emp.SalaryRateType, emp.BasicSalary, rates.DailyWage, startDate, endDate, periodDays)

	summary, entries, tally := BuildPeriodSummary(records, otRequests, utRequests, rates, effective, basePay)

	return calculation{
		emp:       emp,
		effective: effective,
		rates:     rates,
		basePay:   basePay,
		summary:   summary,
		entries:   entries,
		tally:     tally,
		start:     start,
		end:       end,
	}, nil
}

func (s *PayrollServiceImpl) PreviewPayroll(ctx context.Context, req payroll.PreviewPayrollRequest) (payroll.PreviewPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PreviewPayrollResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PreviewPayrollResponse{}, err
	}

	calc, err := s.runPipeline(ctx, companyID, req.EmployeeID, req.StartDate, req.EndDate)
	if err != nil {
		return payroll.PreviewPayrollResponse{}, err
	}

	return payroll.PreviewPayrollResponse{
		Summary:        mapToSummaryResponse(calc.summary),
		DailyBreakdown: mapToEntryResponses(calc.entries),
		FormulasUsed: payroll.FormulasUsed{
			HourlyRate:         calc.rates.HourlyRate,
			PerMinuteRate:      calc.rates.PerMinuteRate,
			PaidHoursPerDay:    calc.rates.PaidHoursPerDay,
			OvertimeMultiplier: calc.effective.OvertimeMultiplier,
		},
	}, nil
}

func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	calc, err := s.runPipeline(ctx, companyID, req.EmployeeID, req.StartDate, req.EndDate)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	// One record per (employee, period). The engine itself gives no
	// idempotency guarantee; this check is the caller-side enforcement.
	_, err = s.payrollRepo.GetRecordByEmployeePeriod(ctx, calc.emp.ID, calc.start, calc.end, companyID)
	if err == nil {
		return payroll.GeneratePayrollResponse{}, payroll.ErrPayrollRecordAlreadyExists
	}
	if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to check existing payroll record: %w", err)
	}

	record := payroll.PayrollRecord{
		EmployeeID:         calc.emp.ID,
		CompanyID:          companyID,
		PeriodStart:        calc.start,
		PeriodEnd:          calc.end,
		BasicSalary:        calc.emp.BasicSalary,
		BasePay:            calc.summary.BasePay,
		GrossPay:           calc.summary.GrossPay,
		TotalOvertimeHours: calc.summary.TotalOvertimeHours,
		OvertimePay:        calc.summary.OvertimePay,
		Deductions:         calc.summary.TotalDeductions,
		NetPay:             calc.summary.NetPay,
		Status:             payroll.PayrollStatusDraft,
	}

	workdays := payroll.WorkdaySummary{
		EmployeeID:       calc.emp.ID,
		CompanyID:        companyID,
		PeriodStart:      calc.start,
		PeriodEnd:        calc.end,
		TotalWorkdays:    calc.tally.TotalWorkdays,
		DaysPresent:      calc.tally.DaysPresent,
		DaysAbsent:       calc.tally.DaysAbsent,
		DaysLeave:        calc.tally.DaysLeave,
		DaysLate:         calc.tally.DaysLate,
		TotalHoursWorked: calc.tally.TotalHoursWorked,
	}

	var created payroll.PayrollRecord
	var storedWorkdays payroll.WorkdaySummary
	err = s.withTx(ctx, func(txCtx context.Context) error {
		created, err = s.payrollRepo.CreateRecord(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to create payroll record: %w", err)
		}
		storedWorkdays, err = s.payrollRepo.UpsertWorkdaySummary(txCtx, workdays)
		if err != nil {
			return fmt.Errorf("failed to store workday summary: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	statutory := ComputePayrollStatutory(calc.summary.GrossPay)

	return payroll.GeneratePayrollResponse{
		Record:         mapToRecordResponse(created),
		Statutory:      mapToStatutoryResponse(statutory),
		WorkdaySummary: mapToWorkdayResponse(storedWorkdays),
		Summary:        mapToSummaryResponse(calc.summary),
		DailyBreakdown: mapToEntryResponses(calc.entries),
	}, nil
}

func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetRecordByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListPayrollRecords(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	records, totalCount, err := s.payrollRepo.ListRecords(ctx, companyID, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}

	return payroll.ListPayrollRecordResponse{
		Data:       result,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) GetStatutoryEstimate(ctx context.Context, recordID string) (payroll.ReportingStatutoryEstimateResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ReportingStatutoryEstimateResponse{}, err
	}

	record, err := s.payrollRepo.GetRecordByID(ctx, recordID, companyID)
	if err != nil {
		return payroll.ReportingStatutoryEstimateResponse{}, err
	}

	estimate := ComputeReportingStatutoryEstimate(record.GrossPay)
	return payroll.ReportingStatutoryEstimateResponse{
		SSS:        estimate.SSS,
		Philhealth: estimate.Philhealth,
		Pagibig:    estimate.Pagibig,
		Tax:        estimate.Tax,
		Total:      estimate.Total,
	}, nil
}

func (s *PayrollServiceImpl) ListSettings(ctx context.Context) ([]payroll.SettingResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.settingsRepo.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.SettingResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, payroll.SettingResponse{Key: row.Key, Value: row.Value})
	}
	return result, nil
}

func (s *PayrollServiceImpl) UpdateSetting(ctx context.Context, req payroll.UpdateSettingRequest) (payroll.SettingResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettingResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SettingResponse{}, err
	}

	stored, err := s.settingsRepo.Upsert(ctx, companyID, req.Key, req.Value)
	if err != nil {
		return payroll.SettingResponse{}, err
	}

	return payroll.SettingResponse{Key: stored.Key, Value: stored.Value}, nil
}

// ========== HELPERS ==========

func mapToSummaryResponse(s payroll.PeriodSummary) payroll.PeriodSummaryResponse {
	return payroll.PeriodSummaryResponse{
		WorkDays:           s.WorkDays,
		AbsentDays:         s.AbsentDays,
		DailyWage:          s.DailyWage,
		BasePay:            s.BasePay,
		GrossPay:           s.GrossPay,
		LateDeduction:      s.LateDeduction,
		UndertimeDeduction: s.UndertimeDeduction,
		AbsentDeduction:    s.AbsentDeduction,
		OvertimePay:        s.OvertimePay,
		TotalDeductions:    s.TotalDeductions,
		NetPay:             s.NetPay,
		HourlyRate:         s.HourlyRate,
		PerMinuteRate:      s.PerMinuteRate,
		PaidHoursPerDay:    s.PaidHoursPerDay,
		OvertimeMultiplier: s.OvertimeMultiplier,
	}
}

func mapToEntryResponses(entries []payroll.DailyBreakdownEntry) []payroll.DailyBreakdownEntryResponse {
	result := make([]payroll.DailyBreakdownEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, payroll.DailyBreakdownEntryResponse{
			Date:               e.Date,
			Status:             e.Status,
			DailyWage:          e.DailyWage,
			LateDeduction:      e.LateDeduction,
			UndertimeDeduction: e.UndertimeDeduction,
			OvertimePay:        e.OvertimePay,
			DailyNet:           e.DailyNet,
		})
	}
	return result
}

func mapToRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	employeeName := ""
	employeeCode := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		employeeCode = *r.EmployeeCode
	}

	return payroll.PayrollRecordResponse{
		ID:                 r.ID,
		EmployeeID:         r.EmployeeID,
		EmployeeName:       employeeName,
		EmployeeCode:       employeeCode,
		PeriodStart:        r.PeriodStart.Format(dateLayout),
		PeriodEnd:          r.PeriodEnd.Format(dateLayout),
		BasicSalary:        r.BasicSalary,
		BasePay:            r.BasePay,
		GrossPay:           r.GrossPay,
		TotalOvertimeHours: r.TotalOvertimeHours,
		OvertimePay:        r.OvertimePay,
		Deductions:         r.Deductions,
		NetPay:             r.NetPay,
		Status:             string(r.Status),
	}
}

func mapToStatutoryResponse(s payroll.StatutoryBreakdown) payroll.StatutoryBreakdownResponse {
	return payroll.StatutoryBreakdownResponse{
		SSS:           s.SSS,
		Philhealth:    s.Philhealth,
		Pagibig:       s.Pagibig,
		ProvidentFund: s.ProvidentFund,
		Tax:           s.Tax,
		Total:         s.Total,
	}
}

func mapToWorkdayResponse(w payroll.WorkdaySummary) payroll.WorkdaySummaryResponse {
	return payroll.WorkdaySummaryResponse{
		EmployeeID:       w.EmployeeID,
		PeriodStart:      w.PeriodStart.Format(dateLayout),
		PeriodEnd:        w.PeriodEnd.Format(dateLayout),
		TotalWorkdays:    w.TotalWorkdays,
		DaysPresent:      w.DaysPresent,
		DaysAbsent:       w.DaysAbsent,
		DaysLeave:        w.DaysLeave,
		DaysLate:         w.DaysLate,
		TotalHoursWorked: w.TotalHoursWorked,
	}
}
