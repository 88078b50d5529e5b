package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"dancebook_backend/internals/features/school/attendance/model"
)

type AttendanceCreateRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	Status    string `json:"status" validate:"required,oneof=present absent late"`
	// nil: derived from the student's confirmed booking
	IsBooked *bool  `json:"is_booked"`
	Notes    string `json:"notes" validate:"max=1000"`
}

func (r *AttendanceCreateRequest) Normalize() {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.Notes = strings.TrimSpace(r.Notes)
}

type AttendanceUpdateRequest struct {
	Status   *string `json:"status" validate:"omitempty,oneof=present absent late"`
	IsBooked *bool   `json:"is_booked"`
	Notes    *string `json:"notes" validate:"omitempty,max=1000"`
}

func (r *AttendanceUpdateRequest) Normalize() {
	if r.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &s
	}
	if r.Notes != nil {
		n := strings.TrimSpace(*r.Notes)
		r.Notes = &n
	}
}

func (r *AttendanceUpdateRequest) ApplyUpdate(m *model.AttendanceModel) {
	if r.Status != nil {
		m.Status = model.AttendanceStatus(*r.Status)
	}
	if r.IsBooked != nil {
		m.IsBooked = *r.IsBooked
	}
	if r.Notes != nil {
		m.Notes = *r.Notes
	}
}

type AttendanceResponse struct {
	ID          uuid.UUID              `json:"id"`
	ClassID     uuid.UUID              `json:"class_id"`
	StudentID   uuid.UUID              `json:"student_id"`
	StudentName string                 `json:"student_name,omitempty"`
	Status      model.AttendanceStatus `json:"status"`
	IsBooked    bool                   `json:"is_booked"`
	Notes       string                 `json:"notes"`
	CreatedAt   time.Time              `json:"created_at"`
}

func FromModel(m *model.AttendanceModel) AttendanceResponse {
	resp := AttendanceResponse{
		ID:        m.ID,
		ClassID:   m.ClassID,
		StudentID: m.StudentID,
		Status:    m.Status,
		IsBooked:  m.IsBooked,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
	if m.Student != nil {
		resp.StudentName = m.Student.FullName()
	}
	return resp
}

func FromModels(rows []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
