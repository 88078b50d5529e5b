package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"dancebook_backend/internals/helpers/dbtime"
)

var weekdayCodes = map[string]rrule.Weekday{
	"MO": rrule.MO,
	"TU": rrule.TU,
	"WE": rrule.WE,
	"TH": rrule.TH,
	"FR": rrule.FR,
	"SA": rrule.SA,
	"SU": rrule.SU,
}

// NormalizeDays upper-cases, de-duplicates and validates weekday codes, keeping input order.
func NormalizeDays(days []string) ([]string, error) {
	out := make([]string, 0, len(days))
	seen := make(map[string]struct{}, len(days))
	for _, d := range days {
		code := strings.ToUpper(strings.TrimSpace(d))
		if _, ok := weekdayCodes[code]; !ok {
			return nil, fmt.Errorf("%q is not a valid weekday. Use MO, TU, WE, TH, FR, SA or SU.", d)
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out, nil
}

func RRuleWeekdays(codes []string) []rrule.Weekday {
	out := make([]rrule.Weekday, 0, len(codes))
	for _, c := range codes {
		if wd, ok := weekdayCodes[strings.ToUpper(c)]; ok {
			out = append(out, wd)
		}
	}
	return out
}

// NextOccurrence is the first session starting at or after t; zero when the class has none left.
func (m *ClassModel) NextOccurrence(t time.Time) time.Time {
	if !m.IsRecurring || len(m.DaysOfWeek) == 0 {
		if m.StartTime.Before(t) {
			return time.Time{}
		}
		return m.StartTime
	}
	rule, err := m.Rule()
	if err != nil {
		return time.Time{}
	}
	next := rule.After(t, true)
	if next.IsZero() {
		return next
	}
	return next.UTC()
}

// Rule is the weekly recurrence of a recurring class, anchored in the school's time zone
// so that DaysOfWeek match local calendar days.
func (m *ClassModel) Rule() (*rrule.RRule, error) {
	return rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   m.StartTime.In(dbtime.SchoolLocation()),
		Byweekday: RRuleWeekdays(m.DaysOfWeek),
	})
}
