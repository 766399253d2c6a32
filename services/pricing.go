package services

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Nights is the number of started days between start and end, never less than one.
func Nights(start, end time.Time) int {
	n := int(math.Ceil(end.Sub(start).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// DerivePrice returns the suggested total for a stay at the given nightly rate.
func DerivePrice(rate float64, start, end time.Time) float64 {
	return rate * float64(Nights(start, end))
}

// ParseDate accepts either a plain date (2006-01-02) or an RFC3339 instant and returns it in UTC.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", raw)
	}
	return t.UTC(), nil
}

// ParseRangeEnd parses the upper bound of a date filter. A plain date covers the whole day, so it
// resolves to the last instant of that day; an RFC3339 instant is taken as is.
func ParseRangeEnd(raw string) (time.Time, error) {
	t, err := ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	if _, err := time.Parse(DateLayout, strings.TrimSpace(raw)); err == nil {
		return t.Add(24*time.Hour - time.Nanosecond), nil
	}
	return t, nil
}

// ClampEnd moves end forward to start when the range is inverted.
func ClampEnd(start, end time.Time) time.Time {
	if end.Before(start) {
		return start
	}
	return end
}
