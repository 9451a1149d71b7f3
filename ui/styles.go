package ui

import "github.com/charmbracelet/lipgloss"

// Base style configurations
var (
	// Text
	Bold = lipgloss.NewStyle().Bold(true)

	palette = DefaultPalette()

	Success = Bold.Foreground(palette.Success)
	Error   = Bold.Foreground(palette.Error)
	Warning = Bold.Foreground(palette.Warning)
	Info    = Bold.Foreground(palette.Info)
	Muted   = lipgloss.NewStyle().Foreground(palette.Muted)

	// Content
	Header = Bold.Foreground(palette.Emphasis)
	Label  = lipgloss.NewStyle().Foreground(palette.Muted)
	Value  = lipgloss.NewStyle().Foreground(palette.Data)
	Code   = lipgloss.NewStyle().Foreground(palette.Special)

	// Layout
	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Emphasis).
		Padding(0, 1)
)

// StatusColor picks the style for a status word.
func StatusColor(status string) lipgloss.Style {
	switch status {
	case "success", "ok":
		return Success
	case "error", "invalid":
		return Error
	case "warning", "fallback":
		return Warning
	case "info":
		return Info
	default:
		return Muted
	}
}

// WithColor applies color to any style
func WithColor(style lipgloss.Style, color lipgloss.Color) lipgloss.Style {
	return style.Foreground(color)
}
