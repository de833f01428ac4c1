package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Lead is a raw contact sitting on the first pipeline column.
// It always points at a resolved client and disappears once converted into a quote.
type Lead struct {
	ID        string    `gorm:"type:char(26);primaryKey"`
	CompanyID *string   `gorm:"type:char(26);index"`
	ClientID  string    `gorm:"type:char(26);not null;index"`
	Client    Client    `gorm:"references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Lead) TableName() string {
	return "leads"
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	l.ID = ulid.Make().String()
	return nil
}
