package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/telton/swatch/theme"
)

const swatchBlock = "███"

// SwatchRenderer renders registry themes for the terminal.
type SwatchRenderer struct {
	palette Palette
}

// NewSwatchRenderer creates a swatch renderer using the CLI palette.
func NewSwatchRenderer() *SwatchRenderer {
	return &SwatchRenderer{palette: palette}
}

// RenderTheme renders a boxed card with one line per color property.
func (r *SwatchRenderer) RenderTheme(name string, t theme.Theme) string {
	lines := []string{
		r.renderColor("primaryColor", t.PrimaryColor),
		r.renderColor("primaryTextColor", t.PrimaryTextColor),
	}
	return NewBox(strings.Join(lines, "\n")).WithTitle(name).Render()
}

func (r *SwatchRenderer) renderColor(prop string, c theme.Color) string {
	label := NewLabelValue(prop, string(c)).WithLabelWidth(len("primaryTextColor"))

	hex, err := c.Hex()
	if err != nil {
		return label.Render() + "  " + NewStatus("invalid", err.Error()).WithIcon("✗").Render()
	}

	block := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(swatchBlock)
	return block + " " + label.Render() + "  " + Code.Render(hex+"  "+c.CSS())
}

// RenderIndex renders a table of the named themes with their stored colors.
func (r *SwatchRenderer) RenderIndex(names []string) string {
	table := NewTable().
		AddColumn("Theme", 12, AlignLeft).
		AddColumn("Primary", 16, AlignLeft).
		AddColumn("Primary Text", 16, AlignLeft)

	for _, name := range names {
		t := theme.Get(name)
		table.AddRow(name, string(t.PrimaryColor), string(t.PrimaryTextColor))
	}

	index := Stack(table, NewSeparator().WithLength(48))
	return index + "\n" + WithColor(Bold, r.palette.Data).Render(pluralThemes(len(names)))
}

func pluralThemes(n int) string {
	if n == 1 {
		return "1 theme"
	}
	return fmt.Sprintf("%d themes", n)
}
