package engine

import "github.com/timka1983/WorkTrackerPRO-sub001/internal/models"

// MaxSlots is the number of concurrent work positions an employee can occupy.
const MaxSlots = 3

// Permissions are the capability flags resolved from an employee's position.
// An employee without a position gets the zero value: single slot, no
// machines, no night shifts, absences allowed.
type Permissions struct {
	MultiSlot        bool
	UseMachines      bool
	CanUseNightShift bool
	MaxShiftMinutes  int // 0 means no duration cap
	MarkAbsences     bool
	RequirePhoto     bool
}

func PermissionsFor(pos *models.Position) Permissions {
	if pos == nil {
		return Permissions{MarkAbsences: true}
	}
	perms := Permissions{
		MultiSlot:        pos.MultiSlot,
		UseMachines:      pos.UseMachines,
		CanUseNightShift: pos.CanUseNightShift,
		MarkAbsences:     pos.MarkAbsences,
		RequirePhoto:     pos.RequirePhoto,
	}
	if pos.MaxShiftMinutes != nil {
		perms.MaxShiftMinutes = *pos.MaxShiftMinutes
	}
	return perms
}
