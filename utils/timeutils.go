package utils

import (
	"fmt"
	"time"
)

// ClockTimeFromUnixSeconds converts a Unix timestamp to a local date-time
// string, e.g. "2024-05-27 08:15:30 PM". A zero timestamp renders as "-"
// since GTFS-RT leaves unknown times unset.
func ClockTimeFromUnixSeconds(sec int64) string {
	if sec == 0 {
		return "-"
	}
	return time.Unix(sec, 0).Format("2006-01-02 03:04:05 PM")
}

// MinutesUntil formats how far in the future a Unix timestamp is, relative
// to now: "due" under a minute, "5 min", or "departed" when in the past.
func MinutesUntil(sec int64, now time.Time) string {
	if sec == 0 {
		return "-"
	}
	d := time.Unix(sec, 0).Sub(now)
	switch {
	case d < 0:
		return "departed"
	case d < time.Minute:
		return "due"
	default:
		return fmt.Sprintf("%d min", int(d.Minutes()))
	}
}
