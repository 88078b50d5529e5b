package dbtime

import (
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

var (
	locOnce   sync.Once
	schoolLoc *time.Location
)

// SchoolLocation is SCHOOL_TIMEZONE (default Europe/Warsaw), UTC when the zone cannot be loaded.
func SchoolLocation() *time.Location {
	locOnce.Do(func() {
		name := "Europe/Warsaw"
		if v, ok := os.LookupEnv("SCHOOL_TIMEZONE"); ok && strings.TrimSpace(v) != "" {
			name = strings.TrimSpace(v)
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			zap.L().Warn("unknown school timezone, using UTC", zap.String("tz", name), zap.Error(err))
			loc = time.UTC
		}
		schoolLoc = loc
	})
	return schoolLoc
}

func NowInSchool() time.Time {
	return time.Now().In(SchoolLocation())
}

// Today is the current calendar date at the school.
func Today() datatypes.Date {
	return DateOf(NowInSchool())
}

// DateOf drops the clock part while keeping the calendar day of t's location.
func DateOf(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

func FormatDatePtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := FormatDate(*d)
	return &s
}
