package service

import (
	"strings"
	"testing"
	"time"

	"dancebook_backend/internals/cache"
)

func TestResolveWindow(t *testing.T) {
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		kind   Kind
		period string
		want   string
		days   int
	}{
		{KindAttendance, "week", "week", 7},
		{KindAttendance, "month", "month", 30},
		{KindAttendance, "quarter", "quarter", 90},
		{KindAttendance, "year", "quarter", 90},
		{KindAttendance, " WEEK ", "week", 7},
		{KindAnalytics, "month", "month", 30},
		{KindAnalytics, "quarter", "quarter", 90},
		{KindAnalytics, "year", "year", 365},
		{KindAnalytics, "week", "year", 365},
		{KindAnalytics, "", "year", 365},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.period, func(t *testing.T) {
			w := ResolveWindow(tt.kind, tt.period, now)
			if w.Period != tt.want {
				t.Fatalf("period = %q, want %q", w.Period, tt.want)
			}
			if !w.To.Equal(now) {
				t.Fatalf("to = %v, want now", w.To)
			}
			if got := w.To.Sub(w.From); got != time.Duration(tt.days)*24*time.Hour {
				t.Fatalf("length = %v, want %d days", got, tt.days)
			}
		})
	}
}

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		booked int64
		max    int
		want   float64
	}{
		{5, 10, 50},
		{10, 10, 100},
		{1, 3, 100.0 / 3},
		{0, 20, 0},
		{4, 0, 0},
	}
	for _, tt := range tests {
		if got := AttendanceRate(tt.booked, tt.max); got != tt.want {
			t.Errorf("AttendanceRate(%d, %d) = %v, want %v", tt.booked, tt.max, got, tt.want)
		}
	}
}

func TestWindowCacheKey(t *testing.T) {
	at := time.Date(2026, 5, 20, 12, 0, 10, 0, time.UTC)
	w := ResolveWindow(KindAttendance, "week", at)

	key := w.CacheKey(KindAttendance)
	if key != cache.ReportPrefix+"attendance:week:202605201200" {
		t.Fatalf("key = %q", key)
	}
	if !strings.HasPrefix(key, cache.ReportPrefix) {
		t.Fatal("report keys must share the invalidation prefix")
	}

	sameMinute := ResolveWindow(KindAttendance, "week", at.Add(40*time.Second))
	if sameMinute.CacheKey(KindAttendance) != key {
		t.Fatal("windows ending in the same minute should share a key")
	}
	nextMinute := ResolveWindow(KindAttendance, "week", at.Add(time.Minute))
	if nextMinute.CacheKey(KindAttendance) == key {
		t.Fatal("a later minute must not be served the earlier window")
	}
	if ResolveWindow(KindAnalytics, "week", at).CacheKey(KindAnalytics) == key {
		t.Fatal("report kinds must not share keys")
	}
}
