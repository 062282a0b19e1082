package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/f5mon/internal/model"
)

// Color constants — console palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
)

// StyleHeader — full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// Status styles for the connectivity indicator.
var (
	StyleConnected    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	StyleDisconnected = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// Utility styles.
var (
	StyleError   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StyleDim     = lipgloss.NewStyle().Foreground(colorGray)
	StyleTitle   = lipgloss.NewStyle().Bold(true)
	StyleAlert   = lipgloss.NewStyle().Foreground(colorYellow)
	StylePrompt  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleGreen   = lipgloss.NewStyle().Foreground(colorGreen)
	StyleRed     = lipgloss.NewStyle().Foreground(colorRed)
	StyleUnknown = lipgloss.NewStyle().Foreground(colorGray)
)

// StateStyle returns the style for a member state icon.
func StateStyle(s model.MemberState) lipgloss.Style {
	switch s {
	case model.StateUp:
		return StyleGreen
	case model.StateDown:
		return StyleRed
	default:
		return StyleUnknown
	}
}
