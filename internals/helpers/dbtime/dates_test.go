package dbtime

import (
	"testing"
	"time"
)

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate(" 1999-04-30 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(d); got != "1999-04-30" {
		t.Fatalf("FormatDate = %q", got)
	}
	if _, err := ParseDate("30.04.1999"); err == nil {
		t.Fatal("expected error for non ISO date")
	}
}

func TestDateOfKeepsCalendarDay(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 00:30 local on Jan 2 is still Jan 1 in UTC
	ts := time.Date(2025, 1, 2, 0, 30, 0, 0, warsaw)
	if got := FormatDate(DateOf(ts)); got != "2025-01-02" {
		t.Fatalf("DateOf = %s, want 2025-01-02", got)
	}
}

func TestFormatDatePtrNil(t *testing.T) {
	if FormatDatePtr(nil) != nil {
		t.Fatal("nil in, nil out")
	}
}
