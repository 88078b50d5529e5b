package model

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentModel is the school-side profile tied one-to-one to a user account.
type StudentModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FirstName   string         `gorm:"size:100;not null" json:"first_name"`
	LastName    string         `gorm:"size:100;not null" json:"last_name"`
	Email       string         `gorm:"size:255;not null" json:"email"`
	PhoneNumber string         `gorm:"size:20;not null" json:"phone_number"`
	DateOfBirth datatypes.Date `gorm:"type:date;not null" json:"date_of_birth"`
	JoinedDate  datatypes.Date `gorm:"type:date;not null" json:"joined_date"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (s *StudentModel) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

func (s *StudentModel) BeforeSave(tx *gorm.DB) error {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.PhoneNumber = strings.TrimSpace(s.PhoneNumber)
	return nil
}
