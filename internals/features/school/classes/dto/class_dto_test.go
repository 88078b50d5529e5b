package dto

import (
	"testing"
	"time"

	"dancebook_backend/internals/features/school/classes/model"
	helper "dancebook_backend/internals/helpers"
)

func TestCheckClass(t *testing.T) {
	start := time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		m     model.ClassModel
		field string
	}{
		{"valid one-off", model.ClassModel{MaxParticipants: 10, StartTime: start, EndTime: start.Add(time.Hour)}, ""},
		{"zero capacity", model.ClassModel{MaxParticipants: 0, StartTime: start, EndTime: start.Add(time.Hour)}, "max_participants"},
		{"end before start", model.ClassModel{MaxParticipants: 5, StartTime: start, EndTime: start}, "end_time"},
		{"bad weekday", model.ClassModel{MaxParticipants: 5, StartTime: start, EndTime: start.Add(time.Hour), DaysOfWeek: []string{"XX"}}, "days_of_week"},
		{"recurring without days", model.ClassModel{MaxParticipants: 5, StartTime: start, EndTime: start.Add(time.Hour), IsRecurring: true}, "days_of_week"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.m
			errs := CheckClass(&m)
			if tt.field == "" {
				if errs != nil {
					t.Fatalf("unexpected errors %v", errs)
				}
				return
			}
			if len(errs[tt.field]) == 0 {
				t.Fatalf("expected error on %s, got %v", tt.field, errs)
			}
		})
	}
}

func TestCheckClassNormalizesDays(t *testing.T) {
	start := time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC)
	m := model.ClassModel{MaxParticipants: 5, StartTime: start, EndTime: start.Add(time.Hour), IsRecurring: true, DaysOfWeek: []string{"we", "WE", "sa"}}
	if errs := CheckClass(&m); errs != nil {
		t.Fatalf("unexpected errors %v", errs)
	}
	if len(m.DaysOfWeek) != 2 || m.DaysOfWeek[0] != "WE" || m.DaysOfWeek[1] != "SA" {
		t.Fatalf("days = %v", m.DaysOfWeek)
	}
}

func TestClassCreateRequestValidation(t *testing.T) {
	v := helper.NewValidator()
	start := time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC)

	req := ClassCreateRequest{
		Name:            "  Salsa basics ",
		Style:           "Salsa",
		MaxParticipants: 12,
		InstructorID:    "6f1b1a9e-5d53-4d8e-9a55-3b1f9b2c0a11",
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
	}
	req.Normalize()
	if errs := helper.ValidateStruct(v, req); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if req.Name != "Salsa basics" {
		t.Fatalf("name not trimmed: %q", req.Name)
	}

	bad := req
	bad.MaxParticipants = 0
	bad.EndTime = start.Add(-time.Minute)
	errs := helper.ValidateStruct(v, bad)
	if len(errs["max_participants"]) == 0 || len(errs["end_time"]) == 0 {
		t.Fatalf("expected capacity and time errors, got %v", errs)
	}
}

func TestFromModelAvailableSlots(t *testing.T) {
	start := time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC)
	m := &model.ClassModel{Name: "Tango", MaxParticipants: 8, StartTime: start, EndTime: start.Add(time.Hour)}
	resp := FromModel(m, 3, 5, start.Add(-time.Hour))
	if resp.ConfirmedCount != 3 || resp.AvailableSlots != 5 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.NextOccurrenceAt == nil || !resp.NextOccurrenceAt.Equal(start) {
		t.Fatalf("next occurrence = %v", resp.NextOccurrenceAt)
	}
	if resp.DaysOfWeek == nil {
		t.Fatal("days_of_week must serialize as []")
	}
}
