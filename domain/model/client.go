// Package model contains data models for the application
package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Client represents a traveler or contact registered by an agency
type Client struct {
	// ID is the unique identifier for the client
	ID string `gorm:"type:char(26);primaryKey"`
	// CompanyID scopes the client to the agency that owns it
	CompanyID *string `gorm:"type:char(26);index"`
	// Name is the client's first name
	Name string `gorm:"type:varchar(255);not null"`
	// Surname is the client's last name
	Surname string `gorm:"type:varchar(255)"`
	Email   string `gorm:"type:varchar(255)"`
	Phone   string `gorm:"type:varchar(30)"`
	// CPF is the Brazilian natural-person registry number
	CPF string `gorm:"type:varchar(14)"`
	// Passport document data used on international bookings
	PassportNumber string     `gorm:"type:varchar(20)"`
	PassportIssue  *time.Time `gorm:"default:null"`
	PassportExpiry *time.Time `gorm:"default:null"`
	BirthDate      *time.Time `gorm:"default:null"`
	Nationality    string     `gorm:"type:varchar(60)"`
	SocialNetwork  string     `gorm:"type:varchar(255)"`
	Notes          string     `gorm:"type:text"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Client) TableName() string {
	return "clientes"
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	c.ID = ulid.Make().String()
	return nil
}

// FullName joins name and surname, skipping an empty surname
func (c *Client) FullName() string {
	if c.Surname == "" {
		return c.Name
	}
	return c.Name + " " + c.Surname
}
