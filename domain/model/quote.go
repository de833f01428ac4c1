package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Quote pipeline statuses. LANÇADO is not a column of its own: launched
// quotes stay under the APROVADO column flagged as launched.
const (
	StatusLead              = "LEAD"
	StatusCotar             = "COTAR"
	StatusAguardandoCliente = "AGUARDANDO_CLIENTE"
	StatusAprovado          = "APROVADO"
	StatusReprovado         = "REPROVADO"
	StatusLancado           = "LANÇADO"
)

// QuoteStatuses lists every status a stored quote may carry, in pipeline order
var QuoteStatuses = []string{
	StatusCotar,
	StatusAguardandoCliente,
	StatusAprovado,
	StatusReprovado,
	StatusLancado,
}

// IsValidQuoteStatus reports whether s is a status a stored quote may carry.
// LEAD is a column, not a quote status.
func IsValidQuoteStatus(s string) bool {
	for _, v := range QuoteStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Quote is the central aggregate of the pipeline: a priced travel proposal
// owning its flights, passengers and sale items.
type Quote struct {
	// ID is the unique identifier for the quote
	ID        string  `gorm:"type:char(26);primaryKey"`
	CompanyID *string `gorm:"type:char(26);index"`
	// ClientID is authoritative for client identity; the display name is a cache
	ClientID *string `gorm:"type:char(26);index"`
	Client   *Client `gorm:"references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	// Code is the 6-character human-facing reference, unique across quotes
	Code  string `gorm:"type:char(6);uniqueIndex;not null"`
	Title string `gorm:"type:varchar(255)"`
	// ClientName caches the client's display name at creation time
	ClientName string `gorm:"type:varchar(255)"`
	Status     string `gorm:"type:varchar(20);not null;default:'COTAR';check:status IN ('COTAR','AGUARDANDO_CLIENTE','APROVADO','REPROVADO','LANÇADO')"`
	// Value is the sale total shown on the pipeline; zero until priced or after un-launching
	Value float64 `gorm:"type:numeric(12,2);default:0"`
	// Cost is the internal cost total, never shown on printed documents
	Cost        float64    `gorm:"type:numeric(12,2);default:0"`
	Destination string     `gorm:"type:varchar(255)"`
	TravelDate  *time.Time `gorm:"default:null"`
	Notes       string     `gorm:"type:text"`
	// Passenger counters, capped at 9 in total
	AdultCount  int `gorm:"default:1"`
	ChildCount  int `gorm:"default:0"`
	InfantCount int `gorm:"default:0"`
	// SaleConfirmedAt records when the sale was launched into the ledger
	SaleConfirmedAt *time.Time       `gorm:"default:null"`
	Flights         []Flight         `gorm:"foreignKey:QuoteID"`
	Passengers      []QuotePassenger `gorm:"foreignKey:QuoteID"`
	SaleItems       []SaleItem       `gorm:"foreignKey:QuoteID"`
	CreatedAt       time.Time        `gorm:"autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt   `gorm:"index"`
}

func (Quote) TableName() string {
	return "cotacoes"
}

func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = ulid.Make().String()
	}
	return nil
}

// TotalPassengers sums the adult, child and infant counters
func (q *Quote) TotalPassengers() int {
	return q.AdultCount + q.ChildCount + q.InfantCount
}

// IsLaunched reports whether the quote's sale has been pushed into the ledger
func (q *Quote) IsLaunched() bool {
	return q.Status == StatusLancado
}
