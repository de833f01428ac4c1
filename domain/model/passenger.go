package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Passenger age brackets
const (
	PassengerAdult  = "adulto"
	PassengerChild  = "crianca"
	PassengerInfant = "bebe"
)

// MaxPassengersPerQuote caps the sum of adults, children and infants
const MaxPassengersPerQuote = 9

// IsValidPassengerType reports whether t is one of the three age brackets
func IsValidPassengerType(t string) bool {
	return t == PassengerAdult || t == PassengerChild || t == PassengerInfant
}

// QuotePassenger links a registered client to a quote as a traveler
type QuotePassenger struct {
	ID       string `gorm:"type:char(26);primaryKey"`
	QuoteID  string `gorm:"type:char(26);not null;uniqueIndex:idx_quote_client"`
	ClientID string `gorm:"type:char(26);not null;uniqueIndex:idx_quote_client"`
	Client   Client `gorm:"references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Type     string `gorm:"type:varchar(10);not null;default:'adulto';check:type IN ('adulto','crianca','bebe')"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (QuotePassenger) TableName() string {
	return "cotacao_passageiros"
}

func (p *QuotePassenger) BeforeCreate(tx *gorm.DB) error {
	p.ID = ulid.Make().String()
	return nil
}

// MissingDocuments lists the client document fields a booking still needs.
// International legs additionally require passport data.
func (p *QuotePassenger) MissingDocuments(international bool) []string {
	var missing []string
	if p.Client.BirthDate == nil {
		missing = append(missing, "data de nascimento")
	}
	if p.Client.CPF == "" {
		missing = append(missing, "CPF")
	}
	if international {
		if p.Client.PassportNumber == "" {
			missing = append(missing, "passaporte")
		}
		if p.Client.PassportExpiry == nil {
			missing = append(missing, "validade do passaporte")
		}
	}
	return missing
}
