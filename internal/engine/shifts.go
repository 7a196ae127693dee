package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

// ActiveShifts maps slot number to the employee's open work entry in it.
// Entries of other employees in logs are ignored.
func ActiveShifts(logs []models.WorkLogEntry, employeeID uuid.UUID) map[int]models.WorkLogEntry {
	active := make(map[int]models.WorkLogEntry)
	for i := range logs {
		entry := logs[i]
		if entry.EmployeeID == employeeID && entry.Open() {
			active[entry.Slot] = entry
		}
	}
	return active
}

type StartParams struct {
	Slot           int
	EmployeeID     uuid.UUID
	OrganizationID uuid.UUID
	EquipmentID    *uuid.UUID
	NightShift     bool
	Perms          Permissions

	// Logs must contain every open work entry of the organization plus all
	// of the employee's entries for the current day. Duplicates are fine.
	Logs []models.WorkLogEntry

	Now             time.Time
	EquipmentWindow time.Duration
}

type StartResult struct {
	Entry models.WorkLogEntry

	// PhotoRequired is set when this start takes the employee from zero to
	// one active shift and the position demands check-in photos. The caller
	// must capture a photo before committing the entry.
	PhotoRequired bool
}

// StartShift validates and computes the opening of a work shift. It mutates
// nothing: the caller owns persisting the returned entry, and must re-check
// equipment availability at commit time to narrow the selection race.
func StartShift(p StartParams) (StartResult, error) {
	if p.Slot < 1 || p.Slot > MaxSlots {
		return StartResult{}, ErrInvalidSlot
	}

	active := ActiveShifts(p.Logs, p.EmployeeID)
	if _, occupied := active[p.Slot]; occupied {
		return StartResult{}, ErrSlotOccupied
	}
	if !p.Perms.MultiSlot && len(active) > 0 {
		return StartResult{}, ErrShiftAlreadyActive
	}

	for i := range p.Logs {
		entry := &p.Logs[i]
		if entry.EmployeeID == p.EmployeeID && entry.Type.Absence() && SameDay(entry.Date, p.Now) {
			return StartResult{}, ErrAbsenceConflict
		}
	}

	if p.NightShift && !p.Perms.CanUseNightShift {
		return StartResult{}, ErrNightNotAllowed
	}
	// The night flag is a per-employee session toggle: while any shift is
	// open, new slots must carry the same flag.
	for _, open := range active {
		if open.NightShift != p.NightShift {
			return StartResult{}, ErrNightLocked
		}
	}

	if p.Perms.UseMachines {
		if p.EquipmentID == nil {
			return StartResult{}, ErrEquipmentRequired
		}
	}
	if p.EquipmentID != nil {
		busy := BusyEquipment(p.Logs, p.Now, p.EquipmentWindow)
		if busy[*p.EquipmentID] {
			return StartResult{}, ErrEquipmentTaken
		}
	}

	checkIn := p.Now
	entry := models.WorkLogEntry{
		EmployeeID:     p.EmployeeID,
		OrganizationID: p.OrganizationID,
		Date:           DateOnly(p.Now),
		Type:           models.EntryWork,
		Slot:           p.Slot,
		EquipmentID:    p.EquipmentID,
		CheckIn:        &checkIn,
		NightShift:     p.NightShift,
	}

	return StartResult{
		Entry:         entry,
		PhotoRequired: p.Perms.RequirePhoto && len(active) == 0,
	}, nil
}

type StopParams struct {
	Slot       int
	EmployeeID uuid.UUID
	Perms      Permissions

	// Logs must contain every open work entry of the employee.
	Logs []models.WorkLogEntry

	NightBonusMinutes int
	Now               time.Time
}

type StopResult struct {
	Entry models.WorkLogEntry

	// PhotoRequired is set when this stop closes the employee's last open
	// shift, bracketing the session the same way the start side does.
	PhotoRequired bool
}

// StopShift computes the completion of the shift occupying the slot. CheckOut
// and DurationMinutes are set together; the caller persists them atomically.
func StopShift(p StopParams) (StopResult, error) {
	if p.Slot < 1 || p.Slot > MaxSlots {
		return StopResult{}, ErrInvalidSlot
	}

	active := ActiveShifts(p.Logs, p.EmployeeID)
	entry, occupied := active[p.Slot]
	if !occupied {
		return StopResult{}, ErrSlotEmpty
	}

	duration := ElapsedMinutes(*entry.CheckIn, p.Now)
	if entry.NightShift && p.NightBonusMinutes > 0 {
		duration += p.NightBonusMinutes
	}

	checkOut := p.Now
	entry.CheckOut = &checkOut
	entry.DurationMinutes = duration

	return StopResult{
		Entry:         entry,
		PhotoRequired: p.Perms.RequirePhoto && len(active) == 1,
	}, nil
}
