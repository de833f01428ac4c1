package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Flight leg directions
const (
	DirectionOutbound = "IDA"
	DirectionReturn   = "VOLTA"
	DirectionInternal = "INTERNO"
)

// IsValidDirection reports whether d is one of the three leg directions
func IsValidDirection(d string) bool {
	return d == DirectionOutbound || d == DirectionReturn || d == DirectionInternal
}

// Flight is one leg attached to a quote
type Flight struct {
	ID      string `gorm:"type:char(26);primaryKey"`
	QuoteID string `gorm:"type:char(26);not null;index"`
	// Direction is IDA, VOLTA or INTERNO; it decides which date field is mandatory
	Direction string `gorm:"type:varchar(10);not null;check:direction IN ('IDA','VOLTA','INTERNO')"`
	Origin    string `gorm:"type:varchar(255);not null"`
	Dest      string `gorm:"type:varchar(255);not null"`
	// DepartureDate is required for IDA and INTERNO legs
	DepartureDate *time.Time `gorm:"default:null"`
	// ReturnDate is required for VOLTA legs
	ReturnDate    *time.Time `gorm:"default:null"`
	Airline       string     `gorm:"type:varchar(100)"`
	FlightNumber  string     `gorm:"type:varchar(10)"`
	Class         string     `gorm:"type:varchar(30)"`
	DepartureTime string     `gorm:"type:varchar(5)"` // HH:MM
	ArrivalTime   string     `gorm:"type:varchar(5)"` // HH:MM
	// Baggage allowances, coerced to zero when negative
	CheckedBags int `gorm:"default:0"`
	CarryOnBags int `gorm:"default:0"`
	// International widens the check-in window from 24h to 48h
	International bool `gorm:"default:false"`
	// CheckInOpensAt is computed from the leg's departure instant
	CheckInOpensAt *time.Time     `gorm:"default:null"`
	Notes          string         `gorm:"type:text"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Flight) TableName() string {
	return "voos"
}

func (f *Flight) BeforeCreate(tx *gorm.DB) error {
	f.ID = ulid.Make().String()
	return nil
}

// TravelDate returns the date relevant for the leg's direction
func (f *Flight) TravelDate() *time.Time {
	if f.Direction == DirectionReturn {
		return f.ReturnDate
	}
	return f.DepartureDate
}
