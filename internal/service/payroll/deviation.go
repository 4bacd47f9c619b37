package payroll

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/sweldo-backend-go/internal/domain/payroll"
)

// The scheduled day boundary is fixed company-wide and intentionally not
// derived from work_hours_per_day.
const (
	scheduledStartMinutes = 8 * 60  // 08:00:00
	scheduledEndMinutes   = 20 * 60 // 20:00:00
)

// Legacy column names probed, in order, before falling back to punch-derived
// values. First parseable value wins.
var (
	lateOverrideKeys      = []string{"late_minutes", "late_min", "late"}
	undertimeOverrideKeys = []string{"undertime_minutes", "undertime_min", "undertime"}
	absentOverrideKeys    = []string{"absent_minutes", "absent_min", "absent"}
)

// LateMinutes computes deductible late minutes for one record. Explicit
// database override fields beat the value computed from time_in against the
// 08:00 scheduled start.
func LateMinutes(rec attendance.Attendance, settings payroll.EffectiveSettings) int {
	if v := firstMinuteOverride(rec.Extra, lateOverrideKeys); v != nil {
		return clampMinutes(*v)
	}

	if rec.TimeIn == nil {
		return 0
	}

	grace := settings.GracePeriodMinutes
	rounding := settings.RoundingIntervalMinutes
	if settings.UseExactMinutesForLate {
		grace = 0
		rounding = 0
	}

	diff := clockMinutes(*rec.TimeIn) - scheduledStartMinutes
	if diff <= grace {
		return 0
	}

	return clampMinutes(ceilToInterval(diff, rounding))
}

// UndertimeMinutes computes deductible undertime minutes for one record.
// Override fields (including a derivation from legacy totalwork) beat the
// value computed from time_out against the 20:00 scheduled end.
func UndertimeMinutes(rec attendance.Attendance, settings payroll.EffectiveSettings, paidHoursPerDay decimal.Decimal) int {
	if v := firstMinuteOverride(rec.Extra, undertimeOverrideKeys); v != nil {
		return clampMinutes(*v)
	}
	if v := parseMinuteValue(rec.Extra["totalwork"]); v != nil {
		return clampMinutes(paidMinutes(paidHoursPerDay) - *v)
	}

	if rec.TimeOut == nil {
		return 0
	}

	diff := scheduledEndMinutes - clockMinutes(*rec.TimeOut)
	if diff <= 0 {
		return 0
	}

	return clampMinutes(ceilToInterval(diff, settings.RoundingIntervalMinutes))
}

// OvertimeMinutes computes overtime minutes from time_out against the 20:00
// scheduled end. There is no database override for overtime; minutes round
// down to the rounding interval. Overtime is independent of any late or
// undertime deduction on the same day.
func OvertimeMinutes(rec attendance.Attendance, settings payroll.EffectiveSettings) int {
	if rec.TimeOut == nil {
		return 0
	}

	diff := clockMinutes(*rec.TimeOut) - scheduledEndMinutes
	if diff <= 0 {
		return 0
	}

	return clampMinutes(floorToInterval(diff, settings.RoundingIntervalMinutes))
}

// AbsentMinutes resolves the deductible minutes for an absent day: override
// fields first, else the full paid day.
func AbsentMinutes(rec attendance.Attendance, paidHoursPerDay decimal.Decimal) int {
	if v := firstMinuteOverride(rec.Extra, absentOverrideKeys); v != nil {
		return clampMinutes(*v)
	}
	return paidMinutes(paidHoursPerDay)
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// parseMinuteValue interprets one raw override value: numeric values round to
// the nearest whole minute, H:MM clock-style values convert to minutes, and
// anything else is nil so the caller falls through to the next source.
func parseMinuteValue(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n := int(math.Round(f))
		return &n
	}

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		n := hours*60 + minutes
		return &n
	}

	return nil
}

// firstMinuteOverride probes the keys in order and short-circuits on the
// first parseable value.
func firstMinuteOverride(extra map[string]string, keys []string) *int {
	for _, key := range keys {
		if v := parseMinuteValue(extra[key]); v != nil {
			return v
		}
	}
	return nil
}

func clockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func paidMinutes(paidHoursPerDay decimal.Decimal) int {
	return int(paidHoursPerDay.Mul(minutesPerHour).Round(0).IntPart())
}

func ceilToInterval(minutes, interval int) int {
	if interval <= 0 || minutes <= 0 {
		return minutes
	}
	return ((minutes + interval - 1) / interval) * interval
}

func floorToInterval(minutes, interval int) int {
	if interval <= 0 || minutes <= 0 {
		return minutes
	}
	return (minutes / interval) * interval
}

func clampMinutes(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
