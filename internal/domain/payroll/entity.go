package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// EffectiveSettings - the merged view of persisted settings over hard-coded
// defaults. Recomputed fresh for every calculation, never cached.
type EffectiveSettings struct {
	WorkHoursPerDay           decimal.Decimal
	LunchHoursPerDay          decimal.Decimal
	GracePeriodMinutes        int
	RoundingIntervalMinutes   int
	OvertimeMultiplier        decimal.Decimal
	PaidHoursPerDay           decimal.Decimal
	UseExactMinutesForLate    bool
	UseOverrideDailyWage      bool
	OverrideDailyWage         decimal.Decimal
	LateDeductionEnabled      bool
	UndertimeDeductionEnabled bool
	AbsentDeductionEnabled    bool
}

// RateSet - the normalized pay rates derived from a compensation profile.
type RateSet struct {
	DailyWage       decimal.Decimal
	PaidHoursPerDay decimal.Decimal
	HourlyRate      decimal.Decimal
	PerMinuteRate   decimal.Decimal
}

// DailyBreakdownEntry - one attendance day as money. Monetary fields are
// rounded to 2 decimals when the entry is emitted.
type DailyBreakdownEntry struct {
	Date               string
	Status             string
	DailyWage          decimal.Decimal
	LateDeduction      decimal.Decimal
	UndertimeDeduction decimal.Decimal
	OvertimePay        decimal.Decimal
	DailyNet           decimal.Decimal
}

// PeriodSummary - period totals plus the rate constants used. Totals are
// accumulated unrounded and rounded to 2 decimals at emission, so they are
// not exactly the sum of the rounded daily entries.
type PeriodSummary struct {
	WorkDays           int
	AbsentDays         int
	DailyWage          decimal.Decimal
	BasePay            decimal.Decimal
	GrossPay           decimal.Decimal
	LateDeduction      decimal.Decimal
	UndertimeDeduction decimal.Decimal
	AbsentDeduction    decimal.Decimal
	OvertimePay        decimal.Decimal
	TotalDeductions    decimal.Decimal
	NetPay             decimal.Decimal

	TotalOvertimeHours decimal.Decimal

	HourlyRate         decimal.Decimal
	PerMinuteRate      decimal.Decimal
	PaidHoursPerDay    decimal.Decimal
	OvertimeMultiplier decimal.Decimal
}

// WorkdayTally - per-status counters collected while walking the period,
// persisted as the workday summary on the generation path.
type WorkdayTally struct {
	TotalWorkdays    int
	DaysPresent      int
	DaysAbsent       int
	DaysLeave        int
	DaysLate         int
	TotalHoursWorked decimal.Decimal
}

// StatutoryBreakdown - government-mandated withholdings computed from gross
// pay on the payroll-generation path. ProvidentFund is carved out of the SSS
// line and excluded from Total; it is informational only.
type StatutoryBreakdown struct {
	SSS           decimal.Decimal
	Philhealth    decimal.Decimal
	Pagibig       decimal.Decimal
	ProvidentFund decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
}

// ReportingStatutoryEstimate - the reporting-only variant: flat 9.5% SSS, no
// provident split, Pag-IBIG capped at 100. Kept separate from
// StatutoryBreakdown; the two formulas diverge on purpose.
type ReportingStatutoryEstimate struct {
	SSS        decimal.Decimal
	Philhealth decimal.Decimal
	Pagibig    decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
}

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft PayrollStatus = "draft"
	PayrollStatusPaid  PayrollStatus = "paid"
)

// PayrollRecord - the persisted result of a payroll generation.
type PayrollRecord struct {
	ID                 string
	EmployeeID         string
	CompanyID          string
	PeriodStart        time.Time
	PeriodEnd          time.Time
	BasicSalary        decimal.Decimal
	BasePay            decimal.Decimal
	GrossPay           decimal.Decimal
	TotalOvertimeHours decimal.Decimal
	OvertimePay        decimal.Decimal
	Deductions         decimal.Decimal
	NetPay             decimal.Decimal
	Status             PayrollStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// WorkdaySummary - attendance-derived day counts keyed by (employee, period).
type WorkdaySummary struct {
	ID               string
	EmployeeID       string
	CompanyID        string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	TotalWorkdays    int
	DaysPresent      int
	DaysAbsent       int
	DaysLeave        int
	DaysLate         int
	TotalHoursWorked decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
