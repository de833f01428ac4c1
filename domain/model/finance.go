package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Ledger row origins
const (
	OriginQuote = "COTACAO"
)

// Ledger row statuses
const (
	LedgerPending = "PENDENTE"
	LedgerPaid    = "PAGA"
)

// AccountPayable is a cost the agency owes, usually to a supplier.
// Rows with origin COTACAO belong to a launched sale and are removed
// when that sale is un-launched.
type AccountPayable struct {
	ID          string  `gorm:"type:char(26);primaryKey"`
	CompanyID   *string `gorm:"type:char(26);index"`
	Description string  `gorm:"type:varchar(255);not null"`
	Value       float64 `gorm:"type:numeric(12,2);not null"`
	DueDate     *time.Time `gorm:"default:null"`
	Installments int       `gorm:"default:1"`
	Status       string    `gorm:"type:varchar(20);not null;default:'PENDENTE'"`
	SupplierID   *string   `gorm:"type:char(26);index"`
	Supplier     *Supplier `gorm:"references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	CategoryID   *string   `gorm:"type:char(26);index"`
	PaymentMethodID *string `gorm:"type:char(26);index"`
	// Origin plus OriginID tie the row back to the record that launched it
	Origin    string         `gorm:"type:varchar(20);index:idx_pagar_origem"`
	OriginID  *string        `gorm:"type:char(26);index:idx_pagar_origem"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (AccountPayable) TableName() string {
	return "contas_pagar"
}

func (a *AccountPayable) BeforeCreate(tx *gorm.DB) error {
	a.ID = ulid.Make().String()
	return nil
}

// AccountReceivable is a value owed to the agency, usually by a client
type AccountReceivable struct {
	ID          string  `gorm:"type:char(26);primaryKey"`
	CompanyID   *string `gorm:"type:char(26);index"`
	Description string  `gorm:"type:varchar(255);not null"`
	Value       float64 `gorm:"type:numeric(12,2);not null"`
	DueDate     *time.Time `gorm:"default:null"`
	Installments int       `gorm:"default:1"`
	Status       string    `gorm:"type:varchar(20);not null;default:'PENDENTE'"`
	ClientID     *string   `gorm:"type:char(26);index"`
	Client       *Client   `gorm:"references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	CategoryID   *string   `gorm:"type:char(26);index"`
	PaymentMethodID *string `gorm:"type:char(26);index"`
	Origin    string         `gorm:"type:varchar(20);index:idx_receber_origem"`
	OriginID  *string        `gorm:"type:char(26);index:idx_receber_origem"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (AccountReceivable) TableName() string {
	return "contas_receber"
}

func (a *AccountReceivable) BeforeCreate(tx *gorm.DB) error {
	a.ID = ulid.Make().String()
	return nil
}
