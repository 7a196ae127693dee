package engine

import "errors"

// Precondition violations: the command was invalid as issued, nothing was
// mutated and retrying the same input will fail the same way.
var (
	ErrInvalidSlot        = errors.New("invalid slot")
	ErrSlotOccupied       = errors.New("slot already occupied")
	ErrSlotEmpty          = errors.New("no active shift in slot")
	ErrShiftAlreadyActive = errors.New("another shift is already active")
	ErrEquipmentRequired  = errors.New("equipment selection required")
	ErrNightNotAllowed    = errors.New("night shift not permitted")
	ErrNightLocked        = errors.New("night shift flag locked while shifts are open")
	ErrAbsenceConflict    = errors.New("absence recorded for this day")
	ErrDayNotEmpty        = errors.New("day already has logged entries")
	ErrShiftStillOpen     = errors.New("open shifts must be closed first")
	ErrAbsenceNotAllowed  = errors.New("absence marking not permitted")
	ErrInvalidEntryType   = errors.New("invalid entry type")
)

// ErrEquipmentTaken is a resource conflict: the selected unit became busy
// between selection and commit. Callers should prompt a re-selection instead
// of repeating the same input.
var ErrEquipmentTaken = errors.New("equipment already taken")

func IsConflict(err error) bool {
	return errors.Is(err, ErrEquipmentTaken)
}

func IsPrecondition(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidSlot,
		ErrSlotOccupied,
		ErrSlotEmpty,
		ErrShiftAlreadyActive,
		ErrEquipmentRequired,
		ErrNightNotAllowed,
		ErrNightLocked,
		ErrAbsenceConflict,
		ErrDayNotEmpty,
		ErrShiftStillOpen,
		ErrAbsenceNotAllowed,
		ErrInvalidEntryType,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
