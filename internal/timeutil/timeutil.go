// Package timeutil provides utility functions for parsing and formatting
// time values.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ParseTimestamp converts an ISO-8601 timestamp string to a time.Time
// that retains the UTC offset it was recorded with. A trailing "Z" is
// equivalent to an explicit "+00:00" offset.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}

	return t, nil
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}
