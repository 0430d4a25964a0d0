// Package dates provides tolerant parsing of the date strings found in
// archive records, which range from plain ISO dates to free-form human text.
package dates

import (
	"time"

	"github.com/araddon/dateparse"

	"github.com/archivelab/meeting-archive/errors"
)

// Layouts tried on the fast path before falling back to flexible parsing.
var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Parse converts a date string into a timezone-naive timestamp.
//
// ISO-style layouts are tried first; anything else goes through dateparse,
// which handles formats like "January 15, 2025" or "15 Jan 2025". Returns an
// INVALID_DATE error when the string is empty or neither strategy succeeds.
func Parse(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, errors.ErrInvalidDate(dateStr, nil)
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return naive(t), nil
		}
	}

	t, err := dateparse.ParseAny(dateStr)
	if err != nil {
		return time.Time{}, errors.ErrInvalidDate(dateStr, err)
	}
	return naive(t), nil
}

// ParseOptional parses a date string that may be absent. Empty input returns
// the zero time with no error.
func ParseOptional(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}
	return Parse(dateStr)
}

// naive strips the zone so timestamps compare as wall-clock values regardless
// of how the source string spelled its offset.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
