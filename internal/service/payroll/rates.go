package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/employee"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/payroll"
)

var (
	daysPerMonth     = decimal.NewFromInt(30)
	daysPerWeek      = decimal.NewFromInt(7)
	minutesPerHour   = decimal.NewFromInt(60)
	rateDivPrecision = int32(10)
)

// ResolveRates normalizes a compensation profile into a daily wage, paid
// hours per day, hourly rate and per-minute rate under the effective
// settings. Returns payroll.ErrZeroPaidHours when the paid-hours divisor
// resolves to zero; that is a fatal configuration error, never coerced.
func ResolveRates(profile employee.CompensationProfile, settings payroll.EffectiveSettings) (payroll.RateSet, error) {
	dailyWage := deriveDailyWage(profile, settings)

	if settings.UseOverrideDailyWage {
		if settings.OverrideDailyWage.IsPositive() {
			dailyWage = settings.OverrideDailyWage
		} else {
			// Zero override means "derive from basic salary" even when the
			// override switch is on.
			dailyWage = deriveDailyWage(profile, settings)
		}
	}

	paidHours := settings.PaidHoursPerDay
	if !paidHours.IsPositive() {
		paidHours = settings.WorkHoursPerDay.Sub(settings.LunchHoursPerDay)
	}
	if !paidHours.IsPositive() {
		return payroll.RateSet{}, payroll.ErrZeroPaidHours
	}

	hourlyRate := dailyWage.DivRound(paidHours, rateDivPrecision)
	perMinuteRate := hourlyRate.DivRound(minutesPerHour, rateDivPrecision)

	return payroll.RateSet{
		DailyWage:       dailyWage,
		PaidHoursPerDay: paidHours,
		HourlyRate:      hourlyRate,
		PerMinuteRate:   perMinuteRate,
	}, nil
}

func deriveDailyWage(profile employee.CompensationProfile, settings payroll.EffectiveSettings) decimal.Decimal {
	switch profile.SalaryRateType {
	case employee.SalaryRateMonthly:
		return profile.BasicSalary.DivRound(daysPerMonth, rateDivPrecision)
	case employee.SalaryRateWeekly:
		return profile.BasicSalary.DivRound(daysPerWeek, rateDivPrecision)
	case employee.SalaryRateHourly:
		return profile.BasicSalary.Mul(settings.WorkHoursPerDay)
	default:
		// daily, and any unrecognized type, keeps the salary as-is
		return profile.BasicSalary
	}
}
