package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"dancebook_backend/internals/features/school/classes/model"
	instructorDTO "dancebook_backend/internals/features/school/instructors/dto"
)

/* =========================================================
   CREATE
========================================================= */

type ClassCreateRequest struct {
	Name            string    `json:"name" validate:"notblank,max=100"`
	Style           string    `json:"style" validate:"notblank,max=50"`
	MaxParticipants int       `json:"max_participants" validate:"gt=0"`
	InstructorID    string    `json:"instructor_id" validate:"required,uuid"`
	StartTime       time.Time `json:"start_time" validate:"required"`
	EndTime         time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	DaysOfWeek      []string  `json:"days_of_week" validate:"omitempty,max=7"`
	IsRecurring     bool      `json:"is_recurring"`
	Room            string    `json:"room" validate:"max=50"`
}

func (r *ClassCreateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Style = strings.TrimSpace(r.Style)
	r.InstructorID = strings.TrimSpace(r.InstructorID)
	r.Room = strings.TrimSpace(r.Room)
}

func (r ClassCreateRequest) ToModel() *model.ClassModel {
	instructorID, _ := uuid.Parse(r.InstructorID)
	return &model.ClassModel{
		Name:            r.Name,
		Style:           r.Style,
		MaxParticipants: r.MaxParticipants,
		InstructorID:    instructorID,
		StartTime:       r.StartTime.UTC(),
		EndTime:         r.EndTime.UTC(),
		DaysOfWeek:      r.DaysOfWeek,
		IsRecurring:     r.IsRecurring,
		Room:            r.Room,
	}
}

/* =========================================================
   PATCH (nil = untouched)
========================================================= */

type ClassUpdateRequest struct {
	Name            *string    `json:"name" validate:"omitempty,notblank,max=100"`
	Style           *string    `json:"style" validate:"omitempty,notblank,max=50"`
	MaxParticipants *int       `json:"max_participants" validate:"omitempty,gt=0"`
	InstructorID    *string    `json:"instructor_id" validate:"omitempty,uuid"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DaysOfWeek      *[]string  `json:"days_of_week" validate:"omitempty,max=7"`
	IsRecurring     *bool      `json:"is_recurring"`
	Room            *string    `json:"room" validate:"omitempty,max=50"`
}

func (r *ClassUpdateRequest) Normalize() {
	for _, p := range []*string{r.Name, r.Style, r.InstructorID, r.Room} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

// ApplyUpdate mutates m; cross-field rules are checked afterwards on the merged row.
func (r *ClassUpdateRequest) ApplyUpdate(m *model.ClassModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Style != nil {
		m.Style = *r.Style
	}
	if r.MaxParticipants != nil {
		m.MaxParticipants = *r.MaxParticipants
	}
	if r.InstructorID != nil {
		if id, err := uuid.Parse(*r.InstructorID); err == nil {
			m.InstructorID = id
			m.Instructor = nil
		}
	}
	if r.StartTime != nil {
		m.StartTime = r.StartTime.UTC()
	}
	if r.EndTime != nil {
		m.EndTime = r.EndTime.UTC()
	}
	if r.DaysOfWeek != nil {
		m.DaysOfWeek = *r.DaysOfWeek
	}
	if r.IsRecurring != nil {
		m.IsRecurring = *r.IsRecurring
	}
	if r.Room != nil {
		m.Room = *r.Room
	}
}

// CheckClass validates the rules spanning several fields and normalizes days_of_week in place.
func CheckClass(m *model.ClassModel) map[string][]string {
	errs := map[string][]string{}
	if m.MaxParticipants <= 0 {
		errs["max_participants"] = append(errs["max_participants"], "Ensure this value is greater than 0.")
	}
	if !m.EndTime.After(m.StartTime) {
		errs["end_time"] = append(errs["end_time"], "End time must be after start time.")
	}
	days, err := model.NormalizeDays(m.DaysOfWeek)
	if err != nil {
		errs["days_of_week"] = append(errs["days_of_week"], err.Error())
	} else {
		m.DaysOfWeek = days
		if m.IsRecurring && len(days) == 0 {
			errs["days_of_week"] = append(errs["days_of_week"], "Recurring classes need at least one day of the week.")
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

/* =========================================================
   QUERY
========================================================= */

type ListClassesQuery struct {
	Style        string `query:"style" json:"style"`
	InstructorID string `query:"instructor_id" json:"instructor_id" validate:"omitempty,uuid"`
	From         string `query:"from" json:"from" validate:"omitempty,datetime=2006-01-02"`
	To           string `query:"to" json:"to" validate:"omitempty,datetime=2006-01-02"`
}

func (q *ListClassesQuery) Normalize() {
	q.Style = strings.TrimSpace(q.Style)
	q.InstructorID = strings.TrimSpace(q.InstructorID)
	q.From = strings.TrimSpace(q.From)
	q.To = strings.TrimSpace(q.To)
}

/* =========================================================
   RESPONSE
========================================================= */

type ClassResponse struct {
	ID               uuid.UUID                         `json:"id"`
	Name             string                            `json:"name"`
	Style            string                            `json:"style"`
	MaxParticipants  int                               `json:"max_participants"`
	InstructorID     uuid.UUID                         `json:"instructor_id"`
	Instructor       *instructorDTO.InstructorResponse `json:"instructor,omitempty"`
	StartTime        time.Time                         `json:"start_time"`
	EndTime          time.Time                         `json:"end_time"`
	DaysOfWeek       []string                          `json:"days_of_week"`
	IsRecurring      bool                              `json:"is_recurring"`
	Room             string                            `json:"room"`
	ConfirmedCount   int64                             `json:"confirmed_bookings"`
	AvailableSlots   int                               `json:"available_slots"`
	NextOccurrenceAt *time.Time                        `json:"next_occurrence,omitempty"`
}

// FromModel needs the confirmed count and the derived free seats from the booking engine.
func FromModel(m *model.ClassModel, confirmed int64, available int, now time.Time) ClassResponse {
	days := []string(m.DaysOfWeek)
	if days == nil {
		days = []string{}
	}
	resp := ClassResponse{
		ID:              m.ID,
		Name:            m.Name,
		Style:           m.Style,
		MaxParticipants: m.MaxParticipants,
		InstructorID:    m.InstructorID,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		DaysOfWeek:      days,
		IsRecurring:     m.IsRecurring,
		Room:            m.Room,
		ConfirmedCount:  confirmed,
		AvailableSlots:  available,
	}
	if m.Instructor != nil {
		ir := instructorDTO.FromModel(m.Instructor)
		resp.Instructor = &ir
	}
	if next := m.NextOccurrence(now); !next.IsZero() {
		resp.NextOccurrenceAt = &next
	}
	return resp
}
