package engine

import (
	"time"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

// unknownBucket collects completed work entries with no equipment attached.
const unknownBucket = "unknown"

// DayWorkedMinutes credits a single day with the largest per-equipment total,
// not the sum across equipment: parallel logs reflect machines tended
// simultaneously, not multiplied labor. Open entries are ignored.
func DayWorkedMinutes(entries []models.WorkLogEntry) int {
	buckets := make(map[string]int)
	for i := range entries {
		entry := &entries[i]
		if !entry.Completed() {
			continue
		}
		key := unknownBucket
		if entry.EquipmentID != nil {
			key = entry.EquipmentID.String()
		}
		buckets[key] += entry.DurationMinutes
	}

	max := 0
	for _, total := range buckets {
		if total > max {
			max = total
		}
	}
	return max
}

// RangeStats summarizes one employee's history over an inclusive date range.
type RangeStats struct {
	WorkedMinutes   int `json:"workedMinutes"`
	WorkedDays      int `json:"workedDays"`
	SickDays        int `json:"sickDays"`
	VacationDays    int `json:"vacationDays"`
	DayOffDays      int `json:"dayOffDays"`
	ImplicitDayOffs int `json:"implicitDayOffs"`
}

// StatsForRange aggregates entries for one employee between from and to
// (inclusive, calendar days). Worked minutes apply the max-across-equipment
// rule per day and sum the per-day maxima. Past days with no entries at all
// count as implicit day-offs: untouched history defaults to a day off.
// Days are matched by calendar date, so entries scanned in a different
// location than the range bounds still land on their day.
func StatsForRange(entries []models.WorkLogEntry, from, to, now time.Time) RangeStats {
	byDay := make(map[string][]models.WorkLogEntry)
	for i := range entries {
		key := entries[i].Date.Format(dayKeyFormat)
		byDay[key] = append(byDay[key], entries[i])
	}

	var stats RangeStats
	today := now.Format(dayKeyFormat)
	for day := DateOnly(from); !day.After(DateOnly(to)); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKeyFormat)
		dayEntries, logged := byDay[key]
		if !logged {
			if key < today {
				stats.ImplicitDayOffs++
			}
			continue
		}

		worked := DayWorkedMinutes(dayEntries)
		stats.WorkedMinutes += worked

		hasCompleted := false
		for i := range dayEntries {
			entry := &dayEntries[i]
			switch entry.Type {
			case models.EntryWork:
				if entry.Completed() {
					hasCompleted = true
				}
			case models.EntrySick:
				stats.SickDays++
			case models.EntryVacation:
				stats.VacationDays++
			case models.EntryDayOff:
				stats.DayOffDays++
			}
		}
		if hasCompleted {
			stats.WorkedDays++
		}
	}
	return stats
}
