package main

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category is the productivity tag attached to every activity.
type Category string

const (
	CategoryProductive   Category = "Productive"
	CategoryUnproductive Category = "Unproductive"
)

var (
	ErrInvalidCategory = errors.New("category must be Productive or Unproductive")
	ErrTimeFormat      = errors.New("invalid time format, use HH:MM")
	ErrZeroDuration    = errors.New("start and end times are equal, a zero-hour activity cannot be recorded")
)

func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "productive":
		return CategoryProductive, nil
	case "unproductive":
		return CategoryUnproductive, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// ActivityRecord is one logged interval. Records are immutable once
// appended; the table is append-only.
type ActivityRecord struct {
	Date     time.Time
	Start    time.Time
	End      time.Time
	Activity string
	Category Category
	Duration time.Duration
	Hours    float64
}

// Recorder validates a submitted interval, appends it to the table and
// persists the result.
type Recorder struct {
	store *Store
	now   func() time.Time
}

func NewRecorder(store *Store) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

// Record parses start/end against today's date, applies the overnight
// rollover, and appends the new record. On any error the input table is
// returned unchanged.
func (r *Recorder) Record(table []ActivityRecord, activity string, category Category, startStr, endStr string) ([]ActivityRecord, float64, error) {
	if category != CategoryProductive && category != CategoryUnproductive {
		return table, 0, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	now := r.now()
	start, err := parseClock(now, startStr)
	if err != nil {
		return table, 0, err
	}
	end, err := parseClock(now, endStr)
	if err != nil {
		return table, 0, err
	}

	if end.Equal(start) {
		return table, 0, ErrZeroDuration
	}
	// end earlier than start clock-wise means the activity crossed
	// midnight: 23:00 -> 01:00 is a two-hour span, not an error.
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}

	duration := end.Sub(start)
	rec := ActivityRecord{
		Date:     midnight(now),
		Start:    start,
		End:      end,
		Activity: activity,
		Category: category,
		Duration: duration,
		Hours:    duration.Seconds() / 3600,
	}

	next := append(table, rec)
	if err := r.store.Persist(next); err != nil {
		return table, 0, fmt.Errorf("persist after append: %w", err)
	}
	return next, rec.Hours, nil
}

func parseClock(day time.Time, s string) (time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrTimeFormat, s)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
