package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Supplier is a vendor the agency buys from
type Supplier struct {
	ID        string  `gorm:"type:char(26);primaryKey"`
	CompanyID *string `gorm:"type:char(26);index"`
	Name      string  `gorm:"type:varchar(255);not null"`
	CNPJ      string  `gorm:"type:varchar(18)"`
	Email     string  `gorm:"type:varchar(255)"`
	Phone     string  `gorm:"type:varchar(30)"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Supplier) TableName() string {
	return "fornecedores"
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	s.ID = ulid.Make().String()
	return nil
}

// Category classifies ledger rows, split by kind into cost and revenue
type Category struct {
	ID        string  `gorm:"type:char(26);primaryKey"`
	CompanyID *string `gorm:"type:char(26);index"`
	Name      string  `gorm:"type:varchar(100);not null"`
	Kind      string  `gorm:"type:varchar(10);not null;check:kind IN ('CUSTO','VENDA')"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Category) TableName() string {
	return "categorias"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	c.ID = ulid.Make().String()
	return nil
}

// PaymentMethod is a configurable way of paying or receiving
type PaymentMethod struct {
	ID        string  `gorm:"type:char(26);primaryKey"`
	CompanyID *string `gorm:"type:char(26);index"`
	Name      string  `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PaymentMethod) TableName() string {
	return "formas_pagamento"
}

func (p *PaymentMethod) BeforeCreate(tx *gorm.DB) error {
	p.ID = ulid.Make().String()
	return nil
}

// Airline is a carrier selectable on flight legs
type Airline struct {
	ID       string `gorm:"type:char(26);primaryKey"`
	Name     string `gorm:"type:varchar(100);not null"`
	IATACode string `gorm:"type:char(2);uniqueIndex"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Airline) TableName() string {
	return "companhias_aereas"
}

func (a *Airline) BeforeCreate(tx *gorm.DB) error {
	a.ID = ulid.Make().String()
	return nil
}
