package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee payroll columns are overrides: when PayType/PayRate are set they
// take precedence over the position's default policy.
type Employee struct {
	ID              uuid.UUID        `gorm:"type:char(36);primaryKey" json:"id"`
	OrganizationID  uuid.UUID        `gorm:"type:char(36);index;not null" json:"organizationId"`
	FirstName       string           `gorm:"size:120;not null" json:"firstName"`
	LastName        string           `gorm:"size:120;not null" json:"lastName"`
	Email           string           `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone           string           `gorm:"size:50" json:"phone"`
	PositionID      *uuid.UUID       `gorm:"type:char(36);index" json:"positionId,omitempty"`
	Position        *Position        `gorm:"foreignKey:PositionID" json:"position,omitempty"`
	PayType         *PayType         `gorm:"size:20" json:"payType,omitempty"`
	PayRate         *decimal.Decimal `gorm:"type:decimal(12,2)" json:"payRate,omitempty"`
	NightShiftBonus *decimal.Decimal `gorm:"type:decimal(12,2)" json:"nightShiftBonus,omitempty"`
	HiredAt         time.Time        `json:"hiredAt"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
