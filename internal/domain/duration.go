package domain

import (
	"fmt"
	"time"

	"github.com/sosodev/duration"
)

// ParseDuration parses an ISO 8601 duration string ("PT2M", "PT4H35M59.14S").
// Invalid input returns a *DurationError carrying the offending value.
func ParseDuration(s string) (time.Duration, error) {
	d, err := duration.Parse(s)
	if err != nil {
		return 0, &DurationError{Value: s, Err: err}
	}
	return d.ToTimeDuration(), nil
}

// FormatDuration renders a time.Duration as an ISO 8601 duration string.
// 120 seconds becomes "PT2M".
func FormatDuration(d time.Duration) string {
	return duration.FromTimeDuration(d).String()
}

// DurationToMinutes converts an ISO 8601 duration into minutes, formatted
// with two decimals ("PT4H35M59.14S" → "275.99").
func DurationToMinutes(s string) (string, error) {
	d, err := ParseDuration(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.2f", d.Minutes()), nil
}
