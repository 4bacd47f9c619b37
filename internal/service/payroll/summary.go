package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/payroll"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/request"
)

// BuildPeriodSummary walks the period's attendance records day by day,
// applies the deviation calculators and approved request overrides, and
// produces the daily breakdown, the period totals and the workday tally.
//
// Daily entries are rounded to 2 decimals at emission while the running
// totals accumulate unrounded, so a period total is intentionally not the
// exact sum of the rounded entries shown to the caller.
func BuildPeriodSummary(
	records []attendance.Attendance,
	otRequests []request.Request,
	utRequests []request.Request,
	rates payroll.RateSet,
	settings payroll.EffectiveSettings,
	basePay decimal.Decimal,
) (payroll.PeriodSummary, []payroll.DailyBreakdownEntry, payroll.WorkdayTally) {
	otByDate := firstRequestByDate(otRequests)
	utByDate := firstRequestByDate(utRequests)

	var (
		totalLate      = decimal.Zero
		totalUndertime = decimal.Zero
		totalAbsent    = decimal.Zero
		totalOvertime  = decimal.Zero
		overtimeHours  = decimal.Zero
		workedMinutes  = decimal.Zero
	)

	entries := make([]payroll.DailyBreakdownEntry, 0, len(records))
	summary := payroll.PeriodSummary{}
	tally := payroll.WorkdayTally{}

	for _, rec := range records {
		dateKey := rec.Date.Format(dateLayout)

		var (
			lateDeduction      = decimal.Zero
			undertimeDeduction = decimal.Zero
			absentDeduction    = decimal.Zero
			overtimePay        = decimal.Zero
		)

		if rec.Status == attendance.StatusAbsent {
			tally.DaysAbsent++
			summary.AbsentDays++
			if settings.AbsentDeductionEnabled {
				minutes := AbsentMinutes(rec, rates.PaidHoursPerDay)
				absentDeduction = rates.PerMinuteRate.Mul(decimal.NewFromInt(int64(minutes)))
			}
		} else {
			summary.WorkDays++
			tally.TotalWorkdays++
			switch rec.Status {
			case attendance.StatusLate:
				tally.DaysLate++
			case attendance.StatusLeave:
				tally.DaysLeave++
			default:
				tally.DaysPresent++
			}

			if settings.LateDeductionEnabled {
				minutes := LateMinutes(rec, settings)
				lateDeduction = rates.PerMinuteRate.Mul(decimal.NewFromInt(int64(minutes)))
			}
			if settings.UndertimeDeductionEnabled {
				minutes := UndertimeMinutes(rec, settings, rates.PaidHoursPerDay)
				undertimeDeduction = rates.PerMinuteRate.Mul(decimal.NewFromInt(int64(minutes)))
			}

			// Overtime is always computed, even on days already carrying
			// late or undertime deductions.
			otMinutes := OvertimeMinutes(rec, settings)
			overtimePay = rates.PerMinuteRate.
				Mul(decimal.NewFromInt(int64(otMinutes))).
				Mul(settings.OvertimeMultiplier)
			overtimeHours = overtimeHours.Add(decimal.NewFromInt(int64(otMinutes)).DivRound(minutesPerHour, rateDivPrecision))
		}

		if rec.TimeIn != nil && rec.TimeOut != nil && rec.TimeOut.After(*rec.TimeIn) {
			workedMinutes = workedMinutes.Add(decimal.NewFromFloat(rec.TimeOut.Sub(*rec.TimeIn).Minutes()))
		}

		// Approved requests are additive on top of punch-derived values.
		if req, ok := otByDate[dateKey]; ok {
			overtimePay = overtimePay.Add(req.Hours.Mul(rates.HourlyRate).Mul(settings.OvertimeMultiplier))
			overtimeHours = overtimeHours.Add(req.Hours)
		}
		if req, ok := utByDate[dateKey]; ok {
			undertimeDeduction = undertimeDeduction.Add(req.Hours.Mul(rates.HourlyRate))
		}

		dailyNet := rates.DailyWage.
			Sub(lateDeduction).
			Sub(undertimeDeduction).
			Sub(absentDeduction).
			Add(overtimePay)

		entries = append(entries, payroll.DailyBreakdownEntry{
			Date:               dateKey,
			Status:             rec.Status,
			DailyWage:          rates.DailyWage.Round(2),
			LateDeduction:      lateDeduction.Round(2),
			UndertimeDeduction: undertimeDeduction.Round(2),
			OvertimePay:        overtimePay.Round(2),
			DailyNet:           dailyNet.Round(2),
		})

		totalLate = totalLate.Add(lateDeduction)
		totalUndertime = totalUndertime.Add(undertimeDeduction)
		totalAbsent = totalAbsent.Add(absentDeduction)
		totalOvertime = totalOvertime.Add(overtimePay)
	}

	gross := basePay.Add(totalOvertime)
	totalDeductions := totalLate.Add(totalUndertime).Add(totalAbsent)
	net := gross.Sub(totalDeductions)

	summary.DailyWage = rates.DailyWage.Round(2)
	summary.BasePay = basePay.Round(2)
	summary.GrossPay = gross.Round(2)
	summary.LateDeduction = totalLate.Round(2)
	summary.UndertimeDeduction = totalUndertime.Round(2)
	summary.AbsentDeduction = totalAbsent.Round(2)
	summary.OvertimePay = totalOvertime.Round(2)
	summary.TotalDeductions = totalDeductions.Round(2)
	summary.NetPay = net.Round(2)
	summary.TotalOvertimeHours = overtimeHours.Round(2)
	summary.HourlyRate = rates.HourlyRate
	summary.PerMinuteRate = rates.PerMinuteRate
	summary.PaidHoursPerDay = rates.PaidHoursPerDay
	summary.OvertimeMultiplier = settings.OvertimeMultiplier

	tally.TotalHoursWorked = workedMinutes.DivRound(minutesPerHour, rateDivPrecision).Round(2)

	return summary, entries, tally
}

// firstRequestByDate keeps the first request per work date; at most one
// request per date per kind is ever applied.
func firstRequestByDate(requests []request.Request) map[string]request.Request {
	byDate := make(map[string]request.Request, len(requests))
	for _, req := range requests {
		key := req.WorkDate.Format(dateLayout)
		if _, ok := byDate[key]; !ok {
			byDate[key] = req
		}
	}
	return byDate
}
