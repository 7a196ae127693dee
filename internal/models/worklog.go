package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntryType string

const (
	EntryWork     EntryType = "work"
	EntryDayOff   EntryType = "day_off"
	EntrySick     EntryType = "sick"
	EntryVacation EntryType = "vacation"
)

// Absence reports whether the type is a non-work day marker.
func (t EntryType) Absence() bool {
	switch t {
	case EntryDayOff, EntrySick, EntryVacation:
		return true
	case EntryWork:
		return false
	}
	return false
}

func (t EntryType) Valid() bool {
	switch t {
	case EntryWork, EntryDayOff, EntrySick, EntryVacation:
		return true
	}
	return false
}

// WorkLogEntry is one attendance record: either a work shift (possibly still
// open, CheckOut nil) or an immutable absence marker for a whole day.
type WorkLogEntry struct {
	ID              uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID      uuid.UUID  `gorm:"type:char(36);index;not null" json:"employeeId"`
	OrganizationID  uuid.UUID  `gorm:"type:char(36);index;not null" json:"organizationId"`
	Date            time.Time  `gorm:"type:date;index;not null" json:"date"`
	Type            EntryType  `gorm:"size:20;index;not null" json:"type"`
	Slot            int        `gorm:"not null;default:0" json:"slot"`
	EquipmentID     *uuid.UUID `gorm:"type:char(36);index" json:"equipmentId,omitempty"`
	CheckIn         *time.Time `json:"checkIn,omitempty"`
	CheckOut        *time.Time `json:"checkOut,omitempty"`
	DurationMinutes int        `gorm:"not null;default:0" json:"durationMinutes"`
	NightShift      bool       `gorm:"not null;default:false" json:"nightShift"`
	PhotoIn         string     `gorm:"size:2048" json:"photoIn,omitempty"`
	PhotoOut        string     `gorm:"size:2048" json:"photoOut,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (e *WorkLogEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Open reports whether the entry is a work shift still in progress.
func (e *WorkLogEntry) Open() bool {
	return e.Type == EntryWork && e.CheckIn != nil && e.CheckOut == nil
}

// Completed reports whether the entry is a finished work shift.
func (e *WorkLogEntry) Completed() bool {
	return e.Type == EntryWork && e.CheckOut != nil
}
