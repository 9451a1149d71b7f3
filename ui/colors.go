package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/telton/swatch/theme"
)

var (
	Green  = lipgloss.Color("10")
	Red    = lipgloss.Color("9")
	Gray   = lipgloss.Color("8")
	Pink   = lipgloss.Color("212")
	Purple = lipgloss.Color("99")
	Cyan   = lipgloss.Color("14")
	Blue   = lipgloss.Color("12")
	Yellow = lipgloss.Color("11")
	Orange = lipgloss.Color("208")
)

// Palette provides semantic color access
type Palette struct {
	Success  lipgloss.Color
	Error    lipgloss.Color
	Warning  lipgloss.Color
	Info     lipgloss.Color
	Muted    lipgloss.Color
	Emphasis lipgloss.Color
	Data     lipgloss.Color
	Special  lipgloss.Color
	Variable lipgloss.Color
}

// DefaultPalette returns the CLI palette, with emphasis and data colors taken
// from the default registry theme.
func DefaultPalette() Palette {
	return PaletteFor(theme.Get(theme.Default))
}

// PaletteFor builds a palette whose emphasis is the theme's primary color and
// whose data color is its primary text color. Colors that fail to decode keep
// the ANSI defaults.
func PaletteFor(t theme.Theme) Palette {
	return Palette{
		Success:  Green,
		Error:    Red,
		Warning:  Yellow,
		Info:     Blue,
		Muted:    Gray,
		Emphasis: ColorOf(t.PrimaryColor, Purple),
		Data:     ColorOf(t.PrimaryTextColor, Cyan),
		Special:  Pink,
		Variable: Orange,
	}
}

// ColorOf converts a registry color to a lipgloss color, or returns fallback
// when it does not decode.
func ColorOf(c theme.Color, fallback lipgloss.Color) lipgloss.Color {
	hex, err := c.Hex()
	if err != nil {
		return fallback
	}
	return lipgloss.Color(hex)
}
