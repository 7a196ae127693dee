package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

// PayPolicy is the compensation policy resolved for one employee.
type PayPolicy struct {
	Type       models.PayType
	Rate       decimal.Decimal
	NightBonus decimal.Decimal
}

// ResolvePayPolicy prefers the employee's override and falls back to the
// position's default. A nil result is a valid degraded state, not an error:
// earnings simply compute to zero.
func ResolvePayPolicy(emp *models.Employee, pos *models.Position) *PayPolicy {
	if emp != nil && emp.PayType != nil && emp.PayRate != nil {
		policy := &PayPolicy{Type: *emp.PayType, Rate: *emp.PayRate}
		if emp.NightShiftBonus != nil {
			policy.NightBonus = *emp.NightShiftBonus
		}
		return policy
	}
	if pos != nil && pos.PayType != nil && pos.PayRate != nil {
		policy := &PayPolicy{Type: *pos.PayType, Rate: *pos.PayRate}
		if pos.NightShiftBonus != nil {
			policy.NightBonus = *pos.NightShiftBonus
		}
		return policy
	}
	return nil
}

var minutesPerHour = decimal.NewFromInt(60)

// LiveDayMinutes aggregates one day's worked minutes under the
// max-across-equipment rule, with open shifts contributing their elapsed
// time as of now. Payroll and the worklog views both read minutes through
// here so the displayed figure and the computed pay always agree.
func LiveDayMinutes(entries []models.WorkLogEntry, now time.Time) int {
	minutes, _ := liveDayAggregate(entries, now)
	return minutes
}

func liveDayAggregate(entries []models.WorkLogEntry, now time.Time) (int, bool) {
	buckets := make(map[string]int)
	night := false
	for i := range entries {
		entry := &entries[i]
		if entry.Type != models.EntryWork || entry.CheckIn == nil {
			continue
		}
		minutes := entry.DurationMinutes
		if entry.Open() {
			minutes = ElapsedMinutes(*entry.CheckIn, now)
		}
		key := unknownBucket
		if entry.EquipmentID != nil {
			key = entry.EquipmentID.String()
		}
		buckets[key] += minutes
		if entry.NightShift {
			night = true
		}
	}

	minutes := 0
	for _, total := range buckets {
		if total > minutes {
			minutes = total
		}
	}
	return minutes, night
}

// Earnings derives the day's pay from the employee's work entries for that
// day. Open shifts contribute their live elapsed time so the figure updates
// while work is running. Minutes aggregate under the max-across-equipment
// rule; the night bonus applies once per day regardless of how many entries
// carry the flag.
func Earnings(todays []models.WorkLogEntry, policy *PayPolicy, now time.Time) decimal.Decimal {
	if policy == nil {
		return decimal.Zero
	}

	minutes, night := liveDayAggregate(todays, now)

	var earned decimal.Decimal
	switch policy.Type {
	case models.PayHourly:
		// Multiply before dividing so whole-currency results stay exact.
		earned = decimal.NewFromInt(int64(minutes)).Mul(policy.Rate).Div(minutesPerHour)
	case models.PayPerShift:
		if minutes > 0 {
			earned = policy.Rate
		}
	}

	if night && minutes > 0 {
		earned = earned.Add(policy.NightBonus)
	}
	return earned
}
