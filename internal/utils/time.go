package utils

import (
	"fmt"
	"time"
)

// Loc is the location used to decide where a calendar day starts.
var Loc = time.Local

// SetLocation switches Loc to the named IANA zone. An empty name keeps time.Local.
func SetLocation(name string) error {
	if name == "" {
		Loc = time.Local
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("failed to load location %q: %w", name, err)
	}
	Loc = loc
	return nil
}

// StartOfDay returns midnight of t's calendar day in Loc.
func StartOfDay(t time.Time) time.Time {
	t = t.In(Loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Loc)
}

var dayLayouts = []string{"2006-01-02", "02/01/06", "02/01/2006"}

// ParseDay parses a calendar day (e.g. 2025-02-07 or 07/02/25) in Loc.
func ParseDay(s string) (time.Time, error) {
	for _, layout := range dayLayouts {
		if d, err := time.ParseInLocation(layout, s, Loc); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid day %q, expected YYYY-MM-DD or DD/MM/YY", s)
}

// FormatDay formats t as YYYY-MM-DD in Loc.
func FormatDay(t time.Time) string {
	return t.In(Loc).Format("2006-01-02")
}
