package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dancebook_backend/internals/constants"
)

// UserModel is the login account. Password holds the bcrypt hash.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"size:150;not null;default:''" json:"first_name"`
	LastName  string    `gorm:"size:150;not null;default:''" json:"last_name"`
	Role      string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	IsStaff   bool      `gorm:"not null;default:false" json:"is_staff"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
	// staff flag is reserved for admins
	if u.Role != constants.RoleAdmin {
		u.IsStaff = false
	}
	return nil
}
