package model

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Task is a follow-up item, optionally bound to a lead.
// Tasks bound to a lead are removed together with it when the lead converts.
type Task struct {
	ID        string  `gorm:"type:char(26);primaryKey"`
	CompanyID *string `gorm:"type:char(26);index"`
	LeadID    *string `gorm:"type:char(26);index"`
	ClientID  *string `gorm:"type:char(26);index"`
	Title     string  `gorm:"type:varchar(255);not null"`
	Notes     string  `gorm:"type:text"`
	DueDate   *time.Time `gorm:"default:null"`
	Done      bool       `gorm:"default:false"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Task) TableName() string {
	return "tarefas"
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	t.ID = ulid.Make().String()
	return nil
}
