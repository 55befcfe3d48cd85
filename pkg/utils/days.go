package utils

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

// DayLayout is the YYYY-MM-DD form used for days everywhere.
const DayLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Days yields every day from the given start date up to, but excluding, the
// current local date. The end is fixed when Days is called.
func Days(year, month, day int) (iter.Seq[string], error) {
	return DaysUntil(year, month, day, time.Now())
}

// DaysUntil is Days with an explicit notion of now. The returned sequence can
// be ranged over any number of times.
func DaysUntil(year, month, day int, now time.Time) (iter.Seq[string], error) {
	start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if start.Year() != year || int(start.Month()) != month || start.Day() != day {
		return nil, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}

	local := now.In(time.Local)
	end := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	return func(yield func(string) bool) {
		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			if !yield(d.Format(DayLayout)) {
				return
			}
		}
	}, nil
}

// ParseDay validates a YYYY-MM-DD string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// DaysFrom is DaysUntil starting at a YYYY-MM-DD string.
func DaysFrom(start string, now time.Time) (iter.Seq[string], error) {
	t, err := ParseDay(start)
	if err != nil {
		return nil, err
	}
	return DaysUntil(t.Year(), int(t.Month()), t.Day(), now)
}

// NextDay returns the day after a YYYY-MM-DD string.
func NextDay(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, 1).Format(DayLayout), nil
}
