package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/employee"
)

func TestPeriodDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"ten days", "2025-03-01", "2025-03-11", 10},
		{"same day", "2025-03-01", "2025-03-01", 0},
		{"inverted clamps to zero", "2025-03-11", "2025-03-01", 0},
		{"bad start", "yesterday", "2025-03-11", 0},
		{"bad end", "2025-03-01", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodDays(tt.start, tt.end))
		})
	}
}

func TestComputeBasePay_MonthlyWholeMonths(t *testing.T) {
	salary := decimal.NewFromInt(30000)
	wage := decimal.NewFromInt(1000)

	// Two calendar months, same day-of-month: pay whole months, not days.
	got := ComputeBasePay(employee.SalaryRateMonthly, salary, wage, "2025-01-15", "2025-03-15", 59)
	assert.True(t, got.Equal(decimal.NewFromInt(60000)), "got %s", got)
}

func TestComputeBasePay_MonthlySingleMonth(t *testing.T) {
	salary := decimal.NewFromInt(30000)
	wage := decimal.NewFromInt(1000)

	got := ComputeBasePay(employee.SalaryRateMonthly, salary, wage, "2025-02-01", "2025-03-01", 28)
	assert.True(t, got.Equal(decimal.NewFromInt(30000)), "got %s", got)
}

func TestComputeBasePay_MonthlyPartialProRates(t *testing.T) {
	salary := decimal.NewFromInt(30000)
	wage := decimal.NewFromInt(1000)

	// Day-of-month differs: 30000/30 * 10 days.
	got := ComputeBasePay(employee.SalaryRateMonthly, salary, wage, "2025-03-01", "2025-03-11", 10)
	assert.True(t, got.Equal(decimal.NewFromInt(10000)), "got %s", got)
}

func TestComputeBasePay_WeeklyWholeWeeks(t *testing.T) {
	salary := decimal.NewFromInt(7000)
	wage := decimal.NewFromInt(1000)

	// Monday to Monday, two weeks.
	got := ComputeBasePay(employee.SalaryRateWeekly, salary, wage, "2025-03-03", "2025-03-17", 14)
	assert.True(t, got.Equal(decimal.NewFromInt(14000)), "got %s", got)
}

func TestComputeBasePay_WeeklyPartialProRates(t *testing.T) {
	salary := decimal.NewFromInt(7000)
	wage := decimal.NewFromInt(1000)

	// Monday to Thursday: 7000/7 * 3 days.
	got := ComputeBasePay(employee.SalaryRateWeekly, salary, wage, "2025-03-03", "2025-03-06", 3)
	assert.True(t, got.Equal(decimal.NewFromInt(3000)), "got %s", got)
}

func TestComputeBasePay_DailyPaysPerDay(t *testing.T) {
	salary := decimal.NewFromInt(1000)
	wage := decimal.NewFromInt(1000)

	got := ComputeBasePay(employee.SalaryRateDaily, salary, wage, "2025-03-01", "2025-03-11", 10)
	assert.True(t, got.Equal(decimal.NewFromInt(10000)), "got %s", got)
}

func TestComputeBasePay_MalformedDatesFallBack(t *testing.T) {
	salary := decimal.NewFromInt(30000)
	wage := decimal.NewFromInt(1000)

	// Monthly falls back to the basic salary itself.
	got := ComputeBasePay(employee.SalaryRateMonthly, salary, wage, "soon", "later", 0)
	assert.True(t, got.Equal(decimal.NewFromInt(30000)), "got %s", got)

	// Daily falls back to wage * periodDays (zero here).
	got = ComputeBasePay(employee.SalaryRateDaily, salary, wage, "soon", "later", 0)
	assert.True(t, got.IsZero(), "got %s", got)
}
