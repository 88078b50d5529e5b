package service

import (
	"strings"
	"time"

	"dancebook_backend/internals/cache"
)

type Kind string

const (
	KindAttendance Kind = "attendance"
	KindAnalytics  Kind = "analytics"
)

const day = 24 * time.Hour

var windows = map[Kind]struct {
	lengths  map[string]time.Duration
	fallback string
}{
	KindAttendance: {
		lengths:  map[string]time.Duration{"week": 7 * day, "month": 30 * day, "quarter": 90 * day},
		fallback: "quarter",
	},
	KindAnalytics: {
		lengths:  map[string]time.Duration{"month": 30 * day, "quarter": 90 * day, "year": 365 * day},
		fallback: "year",
	},
}

// Window is the closed interval [From, To] a report looks at.
type Window struct {
	Period string
	From   time.Time
	To     time.Time
}

// ResolveWindow maps a period name onto a window ending at now.
// Unknown periods fall back to the widest window of that report kind.
func ResolveWindow(kind Kind, period string, now time.Time) Window {
	w := windows[kind]
	p := strings.ToLower(strings.TrimSpace(period))
	length, ok := w.lengths[p]
	if !ok {
		p = w.fallback
		length = w.lengths[p]
	}
	now = now.UTC()
	return Window{Period: p, From: now.Add(-length), To: now}
}

// CacheKey pins a cached report to the minute its window ends in, so a hit is never
// anchored more than a minute (or the cache TTL, whichever is shorter) behind now.
func (w Window) CacheKey(kind Kind) string {
	return cache.ReportPrefix + string(kind) + ":" + w.Period + ":" + w.To.Truncate(time.Minute).Format("200601021504")
}

// AttendanceRate is booked*100/max, 0 for a class without capacity.
func AttendanceRate(booked int64, max int) float64 {
	if max <= 0 {
		return 0
	}
	return float64(booked) * 100 / float64(max)
}
