package dto

import (
	"strings"

	"github.com/google/uuid"

	"dancebook_backend/internals/features/school/instructors/model"
)

/* =========================================================
   CREATE
========================================================= */

type InstructorCreateRequest struct {
	FirstName      string `json:"first_name" validate:"notblank,max=100"`
	LastName       string `json:"last_name" validate:"notblank,max=100"`
	Email          string `json:"email" validate:"required,email,max=255"`
	Specialization string `json:"specialization" validate:"max=100"`
}

func (r *InstructorCreateRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Specialization = strings.TrimSpace(r.Specialization)
}

func (r InstructorCreateRequest) ToModel() *model.InstructorModel {
	return &model.InstructorModel{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Specialization: r.Specialization,
	}
}

/* =========================================================
   PATCH (nil = untouched)
========================================================= */

type InstructorUpdateRequest struct {
	FirstName      *string `json:"first_name" validate:"omitempty,notblank,max=100"`
	LastName       *string `json:"last_name" validate:"omitempty,notblank,max=100"`
	Email          *string `json:"email" validate:"omitempty,email,max=255"`
	Specialization *string `json:"specialization" validate:"omitempty,max=100"`
}

func (r *InstructorUpdateRequest) Normalize() {
	for _, p := range []*string{r.FirstName, r.LastName, r.Specialization} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &e
	}
}

func (r *InstructorUpdateRequest) ApplyUpdate(m *model.InstructorModel) {
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Specialization != nil {
		m.Specialization = *r.Specialization
	}
}

/* =========================================================
   RESPONSE
========================================================= */

type InstructorResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Specialization string    `json:"specialization"`
}

func FromModel(m *model.InstructorModel) InstructorResponse {
	return InstructorResponse{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		Specialization: m.Specialization,
	}
}

func FromModels(rows []model.InstructorModel) []InstructorResponse {
	out := make([]InstructorResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
