package model

import (
	"testing"
	"time"
)

func TestValidUntil(t *testing.T) {
	paid := time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		typ  PaymentType
		want string
	}{
		{TypeSingle, "2026-01-31"},
		{TypeMonthly, "2026-02-28"},
		{TypeQuarterly, "2026-04-30"},
		{TypeYearly, "2027-01-31"},
		{PaymentType("weird"), "2026-01-31"},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			got := time.Time(ValidUntil(tt.typ, paid, time.UTC)).Format("2006-01-02")
			if got != tt.want {
				t.Fatalf("ValidUntil(%s) = %s, want %s", tt.typ, got, tt.want)
			}
		})
	}
}

func TestValidUntilLeapDay(t *testing.T) {
	paid := time.Date(2028, 2, 29, 12, 0, 0, 0, time.UTC)
	if got := time.Time(ValidUntil(TypeYearly, paid, time.UTC)).Format("2006-01-02"); got != "2029-02-28" {
		t.Fatalf("yearly from leap day = %s", got)
	}
	if got := time.Time(ValidUntil(TypeMonthly, paid, time.UTC)).Format("2006-01-02"); got != "2028-03-29" {
		t.Fatalf("monthly from leap day = %s", got)
	}
}

func TestValidUntilUsesSchoolCalendar(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	// 23:30 UTC is already the next day two hours east.
	paid := time.Date(2026, 6, 14, 23, 30, 0, 0, time.UTC)
	got := time.Time(ValidUntil(TypeSingle, paid, loc)).Format("2006-01-02")
	if got != "2026-06-15" {
		t.Fatalf("got %s", got)
	}
}

func TestPaymentTransitions(t *testing.T) {
	tests := []struct {
		from, to PaymentStatus
		want     bool
	}{
		{PaymentPending, PaymentCompleted, true},
		{PaymentPending, PaymentFailed, true},
		{PaymentPending, PaymentRefunded, false},
		{PaymentCompleted, PaymentRefunded, true},
		{PaymentCompleted, PaymentFailed, false},
		{PaymentFailed, PaymentCompleted, false},
		{PaymentRefunded, PaymentCompleted, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s → %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
