package service

import (
	"errors"
	"time"

	"dancebook_backend/internals/features/school/classes/model"
)

const (
	// MaxOccurrenceRange bounds ?from..?to on the occurrences endpoint.
	MaxOccurrenceRange = 366 * 24 * time.Hour
	maxOccurrences     = 500
)

var ErrInvalidRange = errors.New("to must be after from and span at most 366 days.")

type Occurrence struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Occurrences lists the sessions of c that start within [from, to].
// A one-off class yields at most its own slot; a recurring class repeats weekly
// on its days (in the school's time zone) starting at StartTime.
func Occurrences(c *model.ClassModel, from, to time.Time) ([]Occurrence, error) {
	if !to.After(from) || to.Sub(from) > MaxOccurrenceRange {
		return nil, ErrInvalidRange
	}
	dur := c.Duration()

	if !c.IsRecurring || len(c.DaysOfWeek) == 0 {
		if c.StartTime.Before(from) || c.StartTime.After(to) {
			return []Occurrence{}, nil
		}
		return []Occurrence{{Start: c.StartTime, End: c.EndTime}}, nil
	}

	rule, err := c.Rule()
	if err != nil {
		return nil, err
	}

	starts := rule.Between(from, to, true)
	if len(starts) > maxOccurrences {
		starts = starts[:maxOccurrences]
	}
	out := make([]Occurrence, 0, len(starts))
	for _, s := range starts {
		out = append(out, Occurrence{Start: s.UTC(), End: s.Add(dur).UTC()})
	}
	return out, nil
}
