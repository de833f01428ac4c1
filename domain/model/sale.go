package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Sale item kinds: costs feed accounts payable, revenues feed accounts receivable
const (
	SaleItemCost    = "CUSTO"
	SaleItemRevenue = "VENDA"
)

// SaleItem is one draft line of an itemized sale. Items persist on the quote
// and are only copied into the ledger when the sale is launched, so
// un-launching removes the ledger rows without losing the drafted lines.
type SaleItem struct {
	ID      string `gorm:"type:char(26);primaryKey"`
	QuoteID string `gorm:"type:char(26);not null;index"`
	Kind    string `gorm:"type:varchar(10);not null;check:kind IN ('CUSTO','VENDA')"`
	Description string  `gorm:"type:varchar(255);not null"`
	Value       float64 `gorm:"type:numeric(12,2);not null"`
	DueDate     *time.Time `gorm:"default:null"`
	Installments int       `gorm:"default:1"`
	// SupplierID applies to cost items only
	SupplierID *string   `gorm:"type:char(26);index"`
	Supplier   *Supplier `gorm:"references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	// ClientID applies to revenue items only
	ClientID        *string        `gorm:"type:char(26);index"`
	CategoryID      *string        `gorm:"type:char(26);index"`
	PaymentMethodID *string        `gorm:"type:char(26);index"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (SaleItem) TableName() string {
	return "cotacao_itens"
}

func (s *SaleItem) BeforeCreate(tx *gorm.DB) error {
	s.ID = ulid.Make().String()
	return nil
}
