package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// User is an agency operator account managed through the admin endpoints
type User struct {
	// ID is the unique identifier for the user
	ID string `gorm:"type:char(26);primaryKey"`
	// CompanyID is the agency the user belongs to
	CompanyID *string `gorm:"type:char(26);index"`
	Company   *Company `gorm:"references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	// Name is the user's full name
	Name string `gorm:"not null"`
	// Email is the user's email address which must be unique
	Email string `gorm:"uniqueIndex;not null"`
	// PasswordHash is the bcrypt hash of the user's password
	PasswordHash string `gorm:"type:varchar(60);not null"`
	// EmailConfirmedAt is nil until the account is confirmed
	EmailConfirmedAt *time.Time `gorm:"default:null"`
	Role             string     `gorm:"type:varchar(20);default:'agent'"`
	IsActive         bool       `gorm:"default:true"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "usuarios"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.ID = ulid.Make().String()
	return nil
}

// IsConfirmed reports whether the account's email has been confirmed
func (u *User) IsConfirmed() bool {
	return u.EmailConfirmedAt != nil
}
