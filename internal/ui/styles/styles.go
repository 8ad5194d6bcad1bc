// Package styles defines the visual styling for the application.
package styles

import "github.com/charmbracelet/lipgloss"

// Color definitions for the pourwatch theme.
var (
	// Primary colors
	Primary   = lipgloss.Color("173") // Amber
	Secondary = lipgloss.Color("61")  // Indigo
	Subtle    = lipgloss.Color("240") // Gray

	// Status colors
	Success = lipgloss.Color("42")  // Green
	Error   = lipgloss.Color("196") // Red
	Warning = lipgloss.Color("220") // Yellow
	Info    = lipgloss.Color("39")  // Blue

	// Background colors
	BgLight = lipgloss.Color("237")

	// Text colors
	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")
)

// TitleStyle is used for main headings.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// DocStyle provides consistent document margins.
var DocStyle = lipgloss.NewStyle().
	Margin(1, 2).
	Padding(0, 1)

// ActiveTabStyle styles the currently selected tab.
var ActiveTabStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(Primary).
	Padding(0, 2).
	MarginRight(1)

// InactiveTabStyle styles non-selected tabs.
var InactiveTabStyle = lipgloss.NewStyle().
	Foreground(TextSecondary).
	Background(BgLight).
	Padding(0, 2).
	MarginRight(1)

// CardStyle creates a bordered card container.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(1, 2).
	MarginBottom(1)

// CardTitleStyle styles card headers.
var CardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// HelpStyle renders secondary hint text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// ErrorTextStyle renders error text.
var ErrorTextStyle = lipgloss.NewStyle().
	Foreground(Error).
	Bold(true)

// ValueStyle renders prominent numbers.
var ValueStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary)

// BadgeStyle is the base for small status badges.
var BadgeStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Bold(true)

// ToastStyle frames transient notification toasts.
var ToastStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(0, 1)

// HelpPanelStyle frames the keyboard shortcut overlay.
var HelpPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Primary).
	Padding(1, 3)

// RiskBadge colors a badge for a risk tier.
func RiskBadge(level string) lipgloss.Style {
	switch level {
	case "high":
		return BadgeStyle.Foreground(lipgloss.Color("231")).Background(Error)
	case "medium":
		return BadgeStyle.Foreground(lipgloss.Color("232")).Background(Warning)
	default:
		return BadgeStyle.Foreground(lipgloss.Color("232")).Background(Success)
	}
}

// GaugeColor picks a color for a 0..1 fill ratio: calm green through amber
// to red as the gauge fills.
func GaugeColor(ratio float64) lipgloss.Color {
	switch {
	case ratio >= 1:
		return Error
	case ratio >= 0.6:
		return Warning
	default:
		return Success
	}
}
