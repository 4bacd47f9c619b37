package payroll

import (
	"context"
)

// PayrollService defines business logic for the payroll calculation engine.
type PayrollService interface {
	// PreviewPayroll runs the full calculation pipeline for the period and
	// returns the breakdown without persisting anything. Safe to call
	// concurrently; identical inputs produce identical output.
	PreviewPayroll(ctx context.Context, req PreviewPayrollRequest) (PreviewPayrollResponse, error)

	// GeneratePayroll runs the same pipeline and additionally persists the
	// payroll record and the attendance-derived workday summary for the
	// period. Returns a conflict error if a record already exists for the
	// (employee, period) key.
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)

	GetPayrollRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListPayrollRecords(ctx context.Context, filter PayrollFilter) (ListPayrollRecordResponse, error)

	// GetStatutoryEstimate returns the reporting-only statutory estimate for
	// a stored record's gross pay.
	GetStatutoryEstimate(ctx context.Context, recordID string) (ReportingStatutoryEstimateResponse, error)

	// Settings
	ListSettings(ctx context.Context) ([]SettingResponse, error)
	UpdateSetting(ctx context.Context, req UpdateSettingRequest) (SettingResponse, error)
}
