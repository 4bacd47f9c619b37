package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveSettings_Defaults(t *testing.T) {
	effective := ResolveSettings(nil)

	assert.True(t, effective.WorkHoursPerDay.Equal(decimal.NewFromInt(12)))
	assert.True(t, effective.LunchHoursPerDay.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, 0, effective.GracePeriodMinutes)
	assert.Equal(t, 0, effective.RoundingIntervalMinutes)
	assert.True(t, effective.OvertimeMultiplier.Equal(decimal.RequireFromString("1.25")))
	assert.True(t, effective.PaidHoursPerDay.Equal(decimal.NewFromInt(12)))
	assert.True(t, effective.UseExactMinutesForLate)
	assert.True(t, effective.UseOverrideDailyWage)
	assert.True(t, effective.OverrideDailyWage.IsZero())
	assert.True(t, effective.LateDeductionEnabled)
	assert.True(t, effective.UndertimeDeductionEnabled)
	assert.True(t, effective.AbsentDeductionEnabled)
}

func TestResolveSettings_StoredValuesWin(t *testing.T) {
	raw := map[string]string{
		"work_hours_per_day":        "8",
		"lunch_hours_per_day":       "0.5",
		"grace_period_minutes":      "15",
		"rounding_interval_minutes": "30",
		"overtime_multiplier":       "1.5",
		"paid_hours_per_day":        "7.5",
	}

	effective := ResolveSettings(raw)

	assert.True(t, effective.WorkHoursPerDay.Equal(decimal.NewFromInt(8)))
	assert.True(t, effective.LunchHoursPerDay.Equal(decimal.RequireFromString("0.5")))
	assert.Equal(t, 15, effective.GracePeriodMinutes)
	assert.Equal(t, 30, effective.RoundingIntervalMinutes)
	assert.True(t, effective.OvertimeMultiplier.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, effective.PaidHoursPerDay.Equal(decimal.RequireFromString("7.5")))
}

func TestResolveSettings_UnparseableFallsBackToDefault(t *testing.T) {
	raw := map[string]string{
		"work_hours_per_day":   "banana",
		"grace_period_minutes": "soon",
		"overtime_multiplier":  "",
	}

	effective := ResolveSettings(raw)

	assert.True(t, effective.WorkHoursPerDay.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 0, effective.GracePeriodMinutes)
	assert.True(t, effective.OvertimeMultiplier.Equal(decimal.RequireFromString("1.25")))
}

func TestResolveSettings_BooleanForms(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"numeric zero", "0", false},
		{"numeric one", "1", true},
		{"numeric other", "2", true},
		{"word true", "true", true},
		{"word false", "false", false},
		{"garbage keeps default", "maybe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effective := ResolveSettings(map[string]string{
				"late_deduction_enabled": tt.value,
			})
			assert.Equal(t, tt.want, effective.LateDeductionEnabled)
		})
	}
}

func TestResolveSettings_UnknownKeysIgnored(t *testing.T) {
	effective := ResolveSettings(map[string]string{
		"holiday_multiplier": "2.0",
	})

	// Nothing recognized changed, so everything is still the default.
	assert.True(t, effective.OvertimeMultiplier.Equal(decimal.RequireFromString("1.25")))
}
