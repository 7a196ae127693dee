package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PayType string

const (
	PayHourly   PayType = "hourly"
	PayPerShift PayType = "per_shift"
)

// Position holds the per-role capability flags and the default compensation
// policy inherited by employees without an override.
type Position struct {
	ID               uuid.UUID        `gorm:"type:char(36);primaryKey" json:"id"`
	OrganizationID   uuid.UUID        `gorm:"type:char(36);index;not null" json:"organizationId"`
	Name             string           `gorm:"size:120;not null" json:"name"`
	MultiSlot        bool             `gorm:"not null;default:false" json:"multiSlot"`
	UseMachines      bool             `gorm:"not null;default:false" json:"useMachines"`
	CanUseNightShift bool             `gorm:"not null;default:false" json:"canUseNightShift"`
	MaxShiftMinutes  *int             `json:"maxShiftMinutes,omitempty"`
	MarkAbsences     bool             `gorm:"not null;default:true" json:"markAbsences"`
	RequirePhoto     bool             `gorm:"not null;default:false" json:"requirePhoto"`
	PayType          *PayType         `gorm:"size:20" json:"payType,omitempty"`
	PayRate          *decimal.Decimal `gorm:"type:decimal(12,2)" json:"payRate,omitempty"`
	NightShiftBonus  *decimal.Decimal `gorm:"type:decimal(12,2)" json:"nightShiftBonus,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

func (p *Position) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
