package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"dancebook_backend/internals/features/school/bookings/model"
)

type BookingCreateRequest struct {
	ClassID string `json:"class_id" validate:"required,uuid"`
}

func (r *BookingCreateRequest) Normalize() {
	r.ClassID = strings.TrimSpace(r.ClassID)
}

type ListBookingsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=confirmed cancelled waiting"`
}

type BookingClassBrief struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Style     string    `json:"style"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Room      string    `json:"room"`
}

type BookingResponse struct {
	ID          uuid.UUID           `json:"id"`
	StudentID   uuid.UUID           `json:"student_id"`
	ClassID     uuid.UUID           `json:"class_id"`
	BookingDate time.Time           `json:"booking_date"`
	Status      model.BookingStatus `json:"status"`
	Class       *BookingClassBrief  `json:"class,omitempty"`
}

func FromModel(m *model.BookingModel) BookingResponse {
	resp := BookingResponse{
		ID:          m.ID,
		StudentID:   m.StudentID,
		ClassID:     m.ClassID,
		BookingDate: m.BookingDate,
		Status:      m.Status,
	}
	if m.Class != nil {
		resp.Class = &BookingClassBrief{
			ID:        m.Class.ID,
			Name:      m.Class.Name,
			Style:     m.Class.Style,
			StartTime: m.Class.StartTime,
			EndTime:   m.Class.EndTime,
			Room:      m.Class.Room,
		}
	}
	return resp
}

func FromModels(rows []model.BookingModel) []BookingResponse {
	out := make([]BookingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
