// ABOUTME: Relative time formatting for post timestamps
// ABOUTME: Renders the age of a timestamp as "5m ago", "3h ago", "2d ago" and so on

package time

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

const day = 24 * time.Hour

// compactMagnitudes swaps humanize's spelled-out units for the short listing form
var compactMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "just now", DivBy: time.Second},
	{D: time.Hour, Format: "%dm %s", DivBy: time.Minute},
	{D: day, Format: "%dh %s", DivBy: time.Hour},
	{D: 30 * day, Format: "%dd %s", DivBy: day},
	{D: 365 * day, Format: "%dmo %s", DivBy: 30 * day},
	{D: math.MaxInt64, Format: "%dy %s", DivBy: 365 * day},
}

// FormatRelative describes how long before now t happened.
// Zero times render as an empty string; times in the future render as "just now".
func FormatRelative(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.After(now) {
		return "just now"
	}
	return humanize.CustomRelTime(t, now, "ago", "from now", compactMagnitudes)
}
