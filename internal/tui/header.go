package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/f5mon/internal/format"
)

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:   appliance host
//	center: colored "● CONNECTED" / "● DISCONNECTED  <error>" indicator
//	right:  "Last: HH:MM:SS  Poll: Ns"
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	left := app.host

	var center string
	if app.status.Connected {
		center = StyleConnected.Render("● CONNECTED")
	} else {
		indicator := "● DISCONNECTED"
		if app.status.LastError != nil {
			indicator += "  " + classifyError(app.status.LastError)
		} else if app.status.LastUpdated.IsZero() {
			indicator = "● CONNECTING..."
		}
		center = StyleDisconnected.Render(indicator)
	}

	right := StyleDim.Render(fmt.Sprintf("Last: %s  Poll: %s",
		format.FormatTime(app.status.LastUpdated), format.FormatDuration(app.interval)))

	// Build row: left + padding + center + padding + right, filling the
	// inner width. StyleHeader has Padding(0, 1) so inner width = width - 2.
	innerWidth := width - 2
	spacing := innerWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}

// classifyError maps a fetch error onto a short operator-facing label so
// the header stays readable on common failure modes.
func classifyError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case strings.Contains(lower, "401") || strings.Contains(lower, "unauthorized"):
		return "Authentication failed (401)"
	case strings.Contains(lower, "403") || strings.Contains(lower, "forbidden"):
		return "Authentication failed (403)"
	case strings.Contains(lower, "deadline exceeded") || strings.Contains(lower, "timeout"):
		return "Timeout"
	case isTLSError(err):
		return "TLS error"
	}
	if len(msg) > 40 {
		return msg[:40] + "..."
	}
	return msg
}

// isTLSError reports whether err looks like a TLS or certificate problem.
func isTLSError(err error) bool {
	if err == nil {
		return false
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "tls") ||
		strings.Contains(lower, "x509") ||
		strings.Contains(lower, "certificate")
}
