package model

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstructorModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName      string    `gorm:"size:100;not null" json:"first_name"`
	LastName       string    `gorm:"size:100;not null" json:"last_name"`
	Email          string    `gorm:"size:255;not null" json:"email"`
	Specialization string    `gorm:"size:100;not null;default:''" json:"specialization"`
}

func (InstructorModel) TableName() string {
	return "instructors"
}

func (m *InstructorModel) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

func (m *InstructorModel) BeforeSave(tx *gorm.DB) error {
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.FirstName = strings.TrimSpace(m.FirstName)
	m.LastName = strings.TrimSpace(m.LastName)
	m.Specialization = strings.TrimSpace(m.Specialization)
	return nil
}
