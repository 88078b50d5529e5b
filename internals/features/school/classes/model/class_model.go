package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	instructorModel "dancebook_backend/internals/features/school/instructors/model"
)

// ClassModel is one dance class. Recurring classes repeat weekly on DaysOfWeek
// (RFC 5545 codes MO..SU) at the wall-clock time of StartTime.
type ClassModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string         `gorm:"size:100;not null" json:"name"`
	Style           string         `gorm:"size:50;not null" json:"style"`
	MaxParticipants int            `gorm:"not null" json:"max_participants"`
	InstructorID    uuid.UUID      `gorm:"type:uuid;not null" json:"instructor_id"`
	StartTime       time.Time      `gorm:"type:timestamptz;not null" json:"start_time"`
	EndTime         time.Time      `gorm:"type:timestamptz;not null" json:"end_time"`
	DaysOfWeek      pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"days_of_week"`
	IsRecurring     bool           `gorm:"not null;default:false" json:"is_recurring"`
	Room            string         `gorm:"size:50;not null;default:''" json:"room"`

	Instructor *instructorModel.InstructorModel `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
}

func (ClassModel) TableName() string {
	return "classes"
}

func (m *ClassModel) BeforeSave(tx *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Style = strings.TrimSpace(m.Style)
	m.Room = strings.TrimSpace(m.Room)
	m.StartTime = m.StartTime.UTC()
	m.EndTime = m.EndTime.UTC()
	if m.DaysOfWeek == nil {
		m.DaysOfWeek = pq.StringArray{}
	}
	return nil
}

// Duration of a single occurrence.
func (m *ClassModel) Duration() time.Duration {
	return m.EndTime.Sub(m.StartTime)
}
