package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklist.Token holds HMAC(access_token) in hex.
type TokenBlacklist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"type:text;not null;unique" json:"-"`
	ExpiredAt time.Time      `json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
