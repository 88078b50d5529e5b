package model

import (
	"time"

	"github.com/google/uuid"

	classModel "dancebook_backend/internals/features/school/classes/model"
)

type BookingModel struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID   uuid.UUID     `gorm:"type:uuid;not null" json:"student_id"`
	ClassID     uuid.UUID     `gorm:"type:uuid;not null" json:"class_id"`
	BookingDate time.Time     `gorm:"type:timestamptz;not null;<-:create" json:"booking_date"`
	Status      BookingStatus `gorm:"size:20;not null;default:confirmed" json:"status"`

	Class *classModel.ClassModel `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}

func (BookingModel) TableName() string {
	return "bookings"
}
