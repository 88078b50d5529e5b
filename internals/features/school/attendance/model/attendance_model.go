package model

import (
	"time"

	"github.com/google/uuid"

	studentModel "dancebook_backend/internals/features/users/students/model"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// AttendanceModel records one student at one class; (class_id, student_id) is unique.
type AttendanceModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClassID   uuid.UUID        `gorm:"type:uuid;not null" json:"class_id"`
	StudentID uuid.UUID        `gorm:"type:uuid;not null" json:"student_id"`
	Status    AttendanceStatus `gorm:"size:20;not null" json:"status"`
	IsBooked  bool             `gorm:"not null;default:false" json:"is_booked"`
	Notes     string           `gorm:"type:text;not null;default:''" json:"notes"`
	CreatedAt time.Time        `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`

	Student *studentModel.StudentModel `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
