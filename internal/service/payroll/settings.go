package payroll

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/payroll"
)

// Recognized setting keys. Unknown keys in the raw map are ignored.
const (
	keyWorkHoursPerDay           = "work_hours_per_day"
	keyLunchHoursPerDay          = "lunch_hours_per_day"
	keyGracePeriodMinutes        = "grace_period_minutes"
	keyRoundingIntervalMinutes   = "rounding_interval_minutes"
	keyOvertimeMultiplier        = "overtime_multiplier"
	keyPaidHoursPerDay           = "paid_hours_per_day"
	keyUseExactMinutesForLate    = "use_exact_minutes_for_late"
	keyUseOverrideDailyWage      = "use_override_daily_wage"
	keyOverrideDailyWage         = "override_daily_wage"
	keyLateDeductionEnabled      = "late_deduction_enabled"
	keyUndertimeDeductionEnabled = "undertime_deduction_enabled"
	keyAbsentDeductionEnabled    = "absent_deduction_enabled"
)

// ResolveSettings merges persisted key-value settings over hard-coded
// defaults into one effective configuration. Missing or unparseable values
// always resolve to their defaults; this never fails.
func ResolveSettings(raw map[string]string) payroll.EffectiveSettings {
	return payroll.EffectiveSettings{
		WorkHoursPerDay:           settingDecimal(raw, keyWorkHoursPerDay, decimal.NewFromInt(12)),
		LunchHoursPerDay:          settingDecimal(raw, keyLunchHoursPerDay, decimal.NewFromInt(1)),
		GracePeriodMinutes:        settingInt(raw, keyGracePeriodMinutes, 0),
		RoundingIntervalMinutes:   settingInt(raw, keyRoundingIntervalMinutes, 0),
		OvertimeMultiplier:        settingDecimal(raw, keyOvertimeMultiplier, decimal.RequireFromString("1.25")),
		PaidHoursPerDay:           settingDecimal(raw, keyPaidHoursPerDay, decimal.NewFromInt(12)),
		UseExactMinutesForLate:    settingBool(raw, keyUseExactMinutesForLate, true),
		UseOverrideDailyWage:      settingBool(raw, keyUseOverrideDailyWage, true),
		OverrideDailyWage:         settingDecimal(raw, keyOverrideDailyWage, decimal.Zero),
		LateDeductionEnabled:      settingBool(raw, keyLateDeductionEnabled, true),
		UndertimeDeductionEnabled: settingBool(raw, keyUndertimeDeductionEnabled, true),
		AbsentDeductionEnabled:    settingBool(raw, keyAbsentDeductionEnabled, true),
	}
}

func settingDecimal(raw map[string]string, key string, def decimal.Decimal) decimal.Decimal {
	v, ok := raw[key]
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return d
}

func settingInt(raw map[string]string, key string, def int) int {
	v, ok := raw[key]
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func settingBool(raw map[string]string, key string, def bool) bool {
	v, ok := raw[key]
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	s := strings.TrimSpace(v)
	if n, err := strconv.Atoi(s); err == nil {
		return n != 0
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return def
}
