package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWithholdingTax_BracketEdges(t *testing.T) {
	tests := []struct {
		name  string
		gross string
		want  string
	}{
		{"at exemption threshold", "20833", "0"},
		{"one peso over", "20834", "0.2"},
		{"mid first bracket", "25000", "833.4"}, // (25000-20833)*0.20
		{"second bracket", "40000", "4166.75"},  // 2500 + (40000-33333)*0.25
		{"zero", "0", "0"},
		{"negative clamps", "-5000", "0"},
		{"top bracket", "700000", "212499.88"}, // 200833.33 + (700000-666667)*0.35
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithholdingTax(decimal.RequireFromString(tt.gross))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestComputePayrollStatutory(t *testing.T) {
	got := ComputePayrollStatutory(decimal.NewFromInt(30000))

	// 5% SSS = 1500, 10% of that carved out as provident fund.
	assert.True(t, got.SSS.Equal(decimal.NewFromInt(1350)), "sss %s", got.SSS)
	assert.True(t, got.ProvidentFund.Equal(decimal.NewFromInt(150)), "provident %s", got.ProvidentFund)
	// 30000 * 0.05 / 2
	assert.True(t, got.Philhealth.Equal(decimal.NewFromInt(750)), "philhealth %s", got.Philhealth)
	// 2% uncapped on this path
	assert.True(t, got.Pagibig.Equal(decimal.NewFromInt(600)), "pagibig %s", got.Pagibig)
	// 0.20 * (30000 - 20833)
	assert.True(t, got.Tax.Equal(decimal.RequireFromString("1833.4")), "tax %s", got.Tax)
	// Provident fund is excluded from the total.
	assert.True(t, got.Total.Equal(decimal.RequireFromString("4533.4")), "total %s", got.Total)
}

func TestComputePayrollStatutory_PhilhealthClampsLow(t *testing.T) {
	got := ComputePayrollStatutory(decimal.NewFromInt(5000))

	// Base clamps up to 10000: 10000 * 0.05 / 2.
	assert.True(t, got.Philhealth.Equal(decimal.NewFromInt(250)), "philhealth %s", got.Philhealth)
}

func TestComputePayrollStatutory_PhilhealthClampsHigh(t *testing.T) {
	got := ComputePayrollStatutory(decimal.NewFromInt(250000))

	// Base clamps down to 100000: 100000 * 0.05 / 2.
	assert.True(t, got.Philhealth.Equal(decimal.NewFromInt(2500)), "philhealth %s", got.Philhealth)
}

func TestComputeReportingStatutoryEstimate(t *testing.T) {
	got := ComputeReportingStatutoryEstimate(decimal.NewFromInt(30000))

	// Flat 9.5%, no provident split.
	assert.True(t, got.SSS.Equal(decimal.NewFromInt(2850)), "sss %s", got.SSS)
	assert.True(t, got.Philhealth.Equal(decimal.NewFromInt(750)), "philhealth %s", got.Philhealth)
	// 2% would be 600 but this path caps at 100.
	assert.True(t, got.Pagibig.Equal(decimal.NewFromInt(100)), "pagibig %s", got.Pagibig)
	assert.True(t, got.Tax.Equal(decimal.RequireFromString("1833.4")), "tax %s", got.Tax)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("5533.4")), "total %s", got.Total)
}

func TestStatutoryVariantsDiverge(t *testing.T) {
	gross := decimal.NewFromInt(30000)

	generation := ComputePayrollStatutory(gross)
	reporting := ComputeReportingStatutoryEstimate(gross)

	// The generation-path SSS and the reporting-path SSS use different
	// rates on the same gross; the reporting estimate is not what was
	// deducted.
	assert.False(t, generation.SSS.Equal(reporting.SSS))
	assert.False(t, generation.Pagibig.Equal(reporting.Pagibig))
}
