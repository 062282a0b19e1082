package format

import (
	"fmt"
	"time"

	"github.com/dm/f5mon/internal/model"
)

// FormatPercent formats a percentage with one decimal place.
// Example: 34.5 → "34.5%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// StateIcon returns the one-character health marker for a member state:
// "✓" for up, "✗" for down, "?" otherwise.
func StateIcon(s model.MemberState) string {
	switch s {
	case model.StateUp:
		return "✓"
	case model.StateDown:
		return "✗"
	default:
		return "?"
	}
}

// EnabledIcon returns "✓" when enabled, "✗" otherwise.
func EnabledIcon(enabled bool) string {
	if enabled {
		return "✓"
	}
	return "✗"
}

// FormatTime renders a timestamp as HH:MM:SS, or "never" for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("15:04:05")
}

// FormatConnLimit renders a connection limit, where 0 means unlimited.
func FormatConnLimit(n int64) string {
	if n == 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d", n)
}

// FormatDuration formats a poll interval as a compact string, e.g. "30s" or "2m".
func FormatDuration(d time.Duration) string {
	if d >= time.Minute {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

// YesNo renders a boolean as "yes" or "no".
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
