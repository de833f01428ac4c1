package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Company is an agency tenant; its branding shows up on printed quotes
type Company struct {
	ID    string `gorm:"type:char(26);primaryKey"`
	Name  string `gorm:"type:varchar(255);not null"`
	CNPJ  string `gorm:"type:varchar(18)"`
	Email string `gorm:"type:varchar(255)"`
	Phone string `gorm:"type:varchar(30)"`
	// LogoURL and PrimaryColor drive the printed document header
	LogoURL      string `gorm:"type:varchar(500)"`
	PrimaryColor string `gorm:"type:varchar(7)"` // #RRGGBB
	Address      string `gorm:"type:varchar(500)"`
	// PixKey receives payments referenced on printed quotes
	PixKey    string         `gorm:"type:varchar(100)"`
	City      string         `gorm:"type:varchar(100)"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "empresas"
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	c.ID = ulid.Make().String()
	return nil
}
