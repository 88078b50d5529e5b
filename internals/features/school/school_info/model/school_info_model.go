package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// SchoolInfoModel is the single row of school_info; singleton is always TRUE.
type SchoolInfoModel struct {
	Singleton           bool      `gorm:"primaryKey;default:true" json:"-"`
	Name                string    `gorm:"size:200;not null" json:"name"`
	Address             string    `gorm:"type:text;not null" json:"address"`
	Phone               string    `gorm:"size:20;not null" json:"phone"`
	Email               string    `gorm:"size:255;not null" json:"email"`
	BankName            string    `gorm:"size:100;not null" json:"bank_name"`
	BankAccount         string    `gorm:"size:50;not null" json:"bank_account"`
	BankRecipient       string    `gorm:"size:200;not null" json:"bank_recipient"`
	BlikNumber          string    `gorm:"size:20;not null;default:''" json:"blik_number"`
	TransferTitlePrefix string    `gorm:"size:100;not null" json:"transfer_title_prefix"`
	TaxID               string    `gorm:"column:tax_id;size:20;not null;default:''" json:"tax_id"`
	UpdatedAt           time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (SchoolInfoModel) TableName() string {
	return "school_info"
}

func (m *SchoolInfoModel) BeforeSave(tx *gorm.DB) error {
	m.Singleton = true
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	return nil
}
