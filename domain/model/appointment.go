package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Appointment is a scheduled meeting with a client
type Appointment struct {
	ID        string  `gorm:"type:char(26);primaryKey"`
	CompanyID *string `gorm:"type:char(26);index"`
	ClientID  *string `gorm:"type:char(26);index"`
	Client    *Client `gorm:"references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Title     string  `gorm:"type:varchar(255);not null"`
	StartsAt  time.Time `gorm:"not null"`
	Location  string    `gorm:"type:varchar(255)"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Appointment) TableName() string {
	return "compromissos"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	a.ID = ulid.Make().String()
	return nil
}
