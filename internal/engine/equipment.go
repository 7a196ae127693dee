package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

// DefaultEquipmentWindow bounds how far back an open shift keeps its
// equipment busy. Orphaned open records older than this stop blocking the
// unit for everyone else.
const DefaultEquipmentWindow = 24 * time.Hour

// BusyEquipment returns the units attached to an open work shift whose
// check-in falls within the trailing window ending at now.
func BusyEquipment(logs []models.WorkLogEntry, now time.Time, window time.Duration) map[uuid.UUID]bool {
	if window <= 0 {
		window = DefaultEquipmentWindow
	}
	cutoff := now.Add(-window)
	busy := make(map[uuid.UUID]bool)
	for i := range logs {
		entry := &logs[i]
		if !entry.Open() || entry.EquipmentID == nil {
			continue
		}
		if entry.CheckIn.Before(cutoff) {
			continue
		}
		busy[*entry.EquipmentID] = true
	}
	return busy
}

// AvailableEquipment filters units down to those an employee may pick for a
// new slot: active, not in the organization-wide busy set, and not already
// chosen in another slot of the same employee's pending selection.
func AvailableEquipment(units []models.EquipmentUnit, logs []models.WorkLogEntry, selected []uuid.UUID, now time.Time, window time.Duration) []models.EquipmentUnit {
	busy := BusyEquipment(logs, now, window)
	taken := make(map[uuid.UUID]bool, len(selected))
	for _, id := range selected {
		taken[id] = true
	}

	available := make([]models.EquipmentUnit, 0, len(units))
	for _, unit := range units {
		if !unit.Active || busy[unit.ID] || taken[unit.ID] {
			continue
		}
		available = append(available, unit)
	}
	return available
}
