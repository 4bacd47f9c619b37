package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/payroll"
)

var (
	sssRate           = decimal.RequireFromString("0.05")
	providentShare    = decimal.RequireFromString("0.10")
	philhealthRate    = decimal.RequireFromString("0.05")
	philhealthFloor   = decimal.NewFromInt(10000)
	philhealthCeiling = decimal.NewFromInt(100000)
	pagibigRate       = decimal.RequireFromString("0.02")
	pagibigCap        = decimal.NewFromInt(100)
	reportingSSSRate  = decimal.RequireFromString("0.095")
	two               = decimal.NewFromInt(2)
)

// Progressive monthly withholding tax brackets. Threshold, base tax at the
// threshold, and marginal rate on the excess.
var taxBrackets = []struct {
	over decimal.Decimal
	base decimal.Decimal
	rate decimal.Decimal
}{
	{decimal.NewFromInt(666667), decimal.RequireFromString("200833.33"), decimal.RequireFromString("0.35")},
	{decimal.NewFromInt(166667), decimal.RequireFromString("40833.33"), decimal.RequireFromString("0.32")},
	{decimal.NewFromInt(66667), decimal.RequireFromString("10833.33"), decimal.RequireFromString("0.30")},
	{decimal.NewFromInt(33333), decimal.NewFromInt(2500), decimal.RequireFromString("0.25")},
	{decimal.NewFromInt(20833), decimal.Zero, decimal.RequireFromString("0.20")},
}

// ComputePayrollStatutory computes the statutory deductions applied on the
// payroll-generation path. The provident fund is carved out of the 5% SSS
// contribution; it is shown as its own line and excluded from Total.
func ComputePayrollStatutory(gross decimal.Decimal) payroll.StatutoryBreakdown {
	gross = clampGross(gross)

	sssInitial := gross.Mul(sssRate)
	providentFund := sssInitial.Mul(providentShare)
	sss := sssInitial.Sub(providentFund)

	philhealth := philhealthContribution(gross)
	pagibig := gross.Mul(pagibigRate)
	tax := WithholdingTax(gross)

	total := sss.Add(philhealth).Add(pagibig).Add(tax)

	return payroll.StatutoryBreakdown{
		SSS:           sss.Round(2),
		Philhealth:    philhealth.Round(2),
		Pagibig:       pagibig.Round(2),
		ProvidentFund: providentFund.Round(2),
		Tax:           tax.Round(2),
		Total:         total.Round(2),
	}
}

// ComputeReportingStatutoryEstimate is the reporting-only variant: a flat
// 9.5% SSS rate with no provident split and Pag-IBIG capped at 100. It
// diverges from ComputePayrollStatutory on purpose; the two are separate
// formulas, not a refactoring opportunity.
func ComputeReportingStatutoryEstimate(gross decimal.Decimal) payroll.ReportingStatutoryEstimate {
	gross = clampGross(gross)

	sss := gross.Mul(reportingSSSRate)
	philhealth := philhealthContribution(gross)

	pagibig := gross.Mul(pagibigRate)
	if pagibig.GreaterThan(pagibigCap) {
		pagibig = pagibigCap
	}

	tax := WithholdingTax(gross)
	total := sss.Add(philhealth).Add(pagibig).Add(tax)

	return payroll.ReportingStatutoryEstimate{
		SSS:        sss.Round(2),
		Philhealth: philhealth.Round(2),
		Pagibig:    pagibig.Round(2),
		Tax:        tax.Round(2),
		Total:      total.Round(2),
	}
}

// WithholdingTax computes progressive monthly withholding tax on gross pay.
func WithholdingTax(gross decimal.Decimal) decimal.Decimal {
	gross = clampGross(gross)

	for _, bracket := range taxBrackets {
		if gross.GreaterThan(bracket.over) {
			return bracket.base.Add(gross.Sub(bracket.over).Mul(bracket.rate))
		}
	}
	return decimal.Zero
}

// philhealthContribution is half of 5% on gross clamped to the 10k..100k
// contribution base.
func philhealthContribution(gross decimal.Decimal) decimal.Decimal {
	base := gross
	if base.LessThan(philhealthFloor) {
		base = philhealthFloor
	}
	if base.GreaterThan(philhealthCeiling) {
		base = philhealthCeiling
	}
	return base.Mul(philhealthRate).Div(two)
}

func clampGross(gross decimal.Decimal) decimal.Decimal {
	if gross.IsNegative() {
		return decimal.Zero
	}
	return gross
}
