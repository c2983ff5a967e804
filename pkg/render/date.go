package render

import (
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a tracker timestamp cannot be parsed.
var ErrInvalidDate = fmt.Errorf("invalid date")

// dateLayouts are the ISO-8601 shapes the trackers emit: full timestamps
// with or without fractional seconds, and bare dates.
var dateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders a tracker ISO-8601 timestamp as DD/MM/YYYY. The
// trailing Z is stripped and the timestamp treated as naive. An empty
// input renders as an em-dash.
func FormatDate(iso string) (string, error) {
	if iso == "" {
		return EmDash, nil
	}

	naive := strings.TrimSuffix(iso, "Z")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, naive); err == nil {
			return t.Format("02/01/2006"), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, iso)
}
