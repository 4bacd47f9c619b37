package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/employee"
)

const dateLayout = "2006-01-02"

// PeriodDays returns the end-exclusive day count between two dates, never
// negative. Malformed dates count as zero days rather than failing.
func PeriodDays(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0
	}

	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// ComputeBasePay computes the base pay for the exact period. Periods whose
// start and end share calendar alignment (same day-of-month for monthly,
// same weekday for weekly) pay in whole months or weeks; everything else
// pro-rates per day. Date-parse failures fall back to the basic salary for
// monthly/weekly and to dailyWage*periodDays otherwise; this never fails.
func ComputeBasePay(rateType employee.SalaryRateType, basicSalary, dailyWage decimal.Decimal, startDate, endDate string, periodDays int) decimal.Decimal {
	days := decimal.NewFromInt(int64(periodDays))

	switch rateType {
	case employee.SalaryRateMonthly:
		start, end, ok := parsePeriod(startDate, endDate)
		if !ok {
			return basicSalary
		}
		if start.Day() == end.Day() && end.After(start) {
			months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
			if months < 1 {
				months = 1
			}
			return basicSalary.Mul(decimal.NewFromInt(int64(months)))
		}
		return basicSalary.DivRound(daysPerMonth, rateDivPrecision).Mul(days)

	case employee.SalaryRateWeekly:
		start, end, ok := parsePeriod(startDate, endDate)
		if !ok {
			return basicSalary
		}
		if start.Weekday() == end.Weekday() && end.After(start) {
			weeks := int(end.Sub(start).Hours()/24) / 7
			if weeks < 1 {
				weeks = 1
			}
			return basicSalary.Mul(decimal.NewFromInt(int64(weeks)))
		}
		return basicSalary.DivRound(daysPerWeek, rateDivPrecision).Mul(days)

	default:
		// daily and hourly rate types pay per period day
		return dailyWage.Mul(days)
	}
}

func parsePeriod(startDate, endDate string) (time.Time, time.Time, bool) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
