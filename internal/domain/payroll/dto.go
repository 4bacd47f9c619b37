package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sweldo-hr/sweldo-backend-go/internal/pkg/validator"
)

// ========== CALCULATION DTOs ==========

type PreviewPayrollRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *PreviewPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GeneratePayrollRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *GeneratePayrollRequest) Validate() error {
	preview := PreviewPayrollRequest{
		EmployeeID: r.EmployeeID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
	return preview.Validate()
}

type DailyBreakdownEntryResponse struct {
	Date               string          `json:"date"`
	Status             string          `json:"status"`
	DailyWage          decimal.Decimal `json:"daily_wage"`
	LateDeduction      decimal.Decimal `json:"late_deduction"`
	UndertimeDeduction decimal.Decimal `json:"undertime_deduction"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	DailyNet           decimal.Decimal `json:"daily_net"`
}

type PeriodSummaryResponse struct {
	WorkDays           int             `json:"work_days"`
	AbsentDays         int             `json:"absent_days"`
	DailyWage          decimal.Decimal `json:"daily_wage"`
	BasePay            decimal.Decimal `json:"base_pay"`
	GrossPay           decimal.Decimal `json:"gross_pay"`
	LateDeduction      decimal.Decimal `json:"late_deduction"`
	UndertimeDeduction decimal.Decimal `json:"undertime_deduction"`
	AbsentDeduction    decimal.Decimal `json:"absent_deduction"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	NetPay             decimal.Decimal `json:"net_pay"`
	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	PerMinuteRate      decimal.Decimal `json:"per_minute_rate"`
	PaidHoursPerDay    decimal.Decimal `json:"paid_hours_per_day"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier"`
}

type FormulasUsed struct {
	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	PerMinuteRate      decimal.Decimal `json:"per_minute_rate"`
	PaidHoursPerDay    decimal.Decimal `json:"paid_hours_per_day"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier"`
}

type PreviewPayrollResponse struct {
	Summary        PeriodSummaryResponse         `json:"summary"`
	DailyBreakdown []DailyBreakdownEntryResponse `json:"daily_breakdown"`
	FormulasUsed   FormulasUsed                  `json:"formulas_used"`
}

type StatutoryBreakdownResponse struct {
	SSS           decimal.Decimal `json:"sss"`
	Philhealth    decimal.Decimal `json:"philhealth"`
	Pagibig       decimal.Decimal `json:"pagibig"`
	ProvidentFund decimal.Decimal `json:"provident_fund"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
}

type ReportingStatutoryEstimateResponse struct {
	SSS        decimal.Decimal `json:"sss"`
	Philhealth decimal.Decimal `json:"philhealth"`
	Pagibig    decimal.Decimal `json:"pagibig"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
}

type WorkdaySummaryResponse struct {
	EmployeeID       string          `json:"employee_id"`
	PeriodStart      string          `json:"period_start"`
	PeriodEnd        string          `json:"period_end"`
	TotalWorkdays    int             `json:"total_workdays"`
	DaysPresent      int             `json:"days_present"`
	DaysAbsent       int             `json:"days_absent"`
	DaysLeave        int             `json:"days_leave"`
	DaysLate         int             `json:"days_late"`
	TotalHoursWorked decimal.Decimal `json:"total_hours_worked"`
}

type PayrollRecordResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name,omitempty"`
	EmployeeCode       string          `json:"employee_code,omitempty"`
	PeriodStart        string          `json:"period_start"`
	PeriodEnd          string          `json:"period_end"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	BasePay            decimal.Decimal `json:"base_pay"`
	GrossPay           decimal.Decimal `json:"gross_pay"`
	TotalOvertimeHours decimal.Decimal `json:"total_overtime_hours"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	Deductions         decimal.Decimal `json:"deductions"`
	NetPay             decimal.Decimal `json:"net_pay"`
	Status             string          `json:"status"`
}

type GeneratePayrollResponse struct {
	Record         PayrollRecordResponse         `json:"record"`
	Statutory      StatutoryBreakdownResponse    `json:"statutory"`
	WorkdaySummary WorkdaySummaryResponse        `json:"workday_summary"`
	Summary        PeriodSummaryResponse         `json:"summary"`
	DailyBreakdown []DailyBreakdownEntryResponse `json:"daily_breakdown"`
}

// ========== LIST DTOs ==========

type PayrollFilter struct {
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
}

type ListPayrollRecordResponse struct {
	Data       []PayrollRecordResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}

// ========== SETTINGS DTOs ==========

type UpdateSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r *UpdateSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Key) {
		errs = append(errs, validator.ValidationError{Field: "key", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
