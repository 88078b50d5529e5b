package dto

import (
	"strings"

	"github.com/google/uuid"

	"dancebook_backend/internals/features/users/students/model"
	"dancebook_backend/internals/helpers/dbtime"
)

/* =========================================================
   REQUEST DTO — CREATE (admin)
========================================================= */

type StudentCreateRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=128"`
	FirstName   string `json:"first_name" validate:"notblank,max=100"`
	LastName    string `json:"last_name" validate:"notblank,max=100"`
	PhoneNumber string `json:"phone_number" validate:"notblank,max=15"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
}

func (r *StudentCreateRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
}

/* =========================================================
   PARTIAL UPDATE DTO — nil means untouched
========================================================= */

type StudentUpdateRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,notblank,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,notblank,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,notblank,max=15"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	// admin only; ignored on the self-profile endpoint
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

func (r *StudentUpdateRequest) Normalize() {
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(r.FirstName)
	trim(r.LastName)
	trim(r.PhoneNumber)
	trim(r.DateOfBirth)
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &e
	}
}

// ApplyUpdate mutates m; date_of_birth has already passed validation.
func (r *StudentUpdateRequest) ApplyUpdate(m *model.StudentModel) {
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.PhoneNumber != nil {
		m.PhoneNumber = *r.PhoneNumber
	}
	if r.DateOfBirth != nil {
		if d, err := dbtime.ParseDate(*r.DateOfBirth); err == nil {
			m.DateOfBirth = d
		}
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type StudentResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	DateOfBirth string    `json:"date_of_birth"`
	JoinedDate  string    `json:"joined_date"`
}

func FromModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		DateOfBirth: dbtime.FormatDate(m.DateOfBirth),
		JoinedDate:  dbtime.FormatDate(m.JoinedDate),
	}
}

func FromModels(rows []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

type ListStudentsQuery struct {
	Search string `query:"search"`
}

func (q *ListStudentsQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
}
