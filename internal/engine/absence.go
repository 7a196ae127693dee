package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

type AbsenceParams struct {
	Kind           models.EntryType
	EmployeeID     uuid.UUID
	OrganizationID uuid.UUID
	Date           time.Time
	Perms          Permissions

	// Logs must contain the employee's entries for the target date plus
	// every open work entry of the employee anywhere.
	Logs []models.WorkLogEntry
}

// MarkAbsence validates and builds a day-level absence entry. A day holds at
// most one non-work entry and never mixes absence with work, so any existing
// log for the date rejects the command, as does any open shift anywhere.
// The entry is created complete and is immutable afterwards.
func MarkAbsence(p AbsenceParams) (models.WorkLogEntry, error) {
	if !p.Kind.Valid() || !p.Kind.Absence() {
		return models.WorkLogEntry{}, ErrInvalidEntryType
	}
	if !p.Perms.MarkAbsences {
		return models.WorkLogEntry{}, ErrAbsenceNotAllowed
	}

	day := DateOnly(p.Date)
	for i := range p.Logs {
		entry := &p.Logs[i]
		if entry.EmployeeID != p.EmployeeID {
			continue
		}
		if SameDay(entry.Date, day) {
			return models.WorkLogEntry{}, ErrDayNotEmpty
		}
		if entry.Open() {
			return models.WorkLogEntry{}, ErrShiftStillOpen
		}
	}

	return models.WorkLogEntry{
		EmployeeID:     p.EmployeeID,
		OrganizationID: p.OrganizationID,
		Date:           day,
		Type:           p.Kind,
	}, nil
}
