package ui

import (
	"strings"
)

// Component represents a reusable UI component
type Component interface {
	Render() string
}

// Stack renders components one per line, skipping empty output.
func Stack(components ...Component) string {
	lines := make([]string, 0, len(components))
	for _, c := range components {
		if out := c.Render(); out != "" {
			lines = append(lines, out)
		}
	}
	return strings.Join(lines, "\n")
}

// HeaderComponent renders styled headers
type HeaderComponent struct {
	Text   string
	Margin bool
}

// NewHeader creates a new header component
func NewHeader(text string) *HeaderComponent {
	return &HeaderComponent{Text: text}
}

// WithMargin adds bottom margin to the header
func (h *HeaderComponent) WithMargin() *HeaderComponent {
	h.Margin = true
	return h
}

// Render outputs the styled header
func (h *HeaderComponent) Render() string {
	style := Header
	if h.Margin {
		style = style.MarginBottom(1)
	}
	return style.Render(h.Text)
}

// LabelValueComponent renders label: value pairs
type LabelValueComponent struct {
	Label  string
	Value  string
	Width  int
	Indent int
}

// NewLabelValue creates a new label-value component
func NewLabelValue(label, value string) *LabelValueComponent {
	return &LabelValueComponent{Label: label, Value: value}
}

// WithIndent adds left indentation
func (lv *LabelValueComponent) WithIndent(spaces int) *LabelValueComponent {
	lv.Indent = spaces
	return lv
}

// WithLabelWidth pads the label so values line up.
func (lv *LabelValueComponent) WithLabelWidth(width int) *LabelValueComponent {
	lv.Width = width
	return lv
}

// Render outputs the styled label-value pair
func (lv *LabelValueComponent) Render() string {
	label := lv.Label
	if pad := lv.Width - len(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}

	return strings.Repeat(" ", lv.Indent) + Label.Render(label) + " " + Value.Render(lv.Value)
}

// StatusComponent renders status indicators with appropriate colors
type StatusComponent struct {
	Status string
	Text   string
	Icon   string
}

// NewStatus creates a new status component
func NewStatus(status, text string) *StatusComponent {
	return &StatusComponent{Status: status, Text: text}
}

// WithIcon adds an icon to the status
func (s *StatusComponent) WithIcon(icon string) *StatusComponent {
	s.Icon = icon
	return s
}

// Render outputs the styled status
func (s *StatusComponent) Render() string {
	text := s.Text
	if s.Icon != "" {
		text = s.Icon + " " + text
	}
	return StatusColor(s.Status).Render(text)
}

// SeparatorComponent renders visual separators
type SeparatorComponent struct {
	Length int
	Char   string
}

// NewSeparator creates a new separator
func NewSeparator() *SeparatorComponent {
	return &SeparatorComponent{Length: 40, Char: "─"}
}

// WithLength sets separator length
func (s *SeparatorComponent) WithLength(length int) *SeparatorComponent {
	s.Length = length
	return s
}

// Render outputs the separator
func (s *SeparatorComponent) Render() string {
	return Muted.Render(strings.Repeat(s.Char, s.Length))
}

// BoxComponent renders content in a bordered box
type BoxComponent struct {
	Content string
	Title   string
	Width   int
}

// NewBox creates a new box component
func NewBox(content string) *BoxComponent {
	return &BoxComponent{Content: content}
}

// WithTitle adds a title to the box
func (b *BoxComponent) WithTitle(title string) *BoxComponent {
	b.Title = title
	return b
}

// WithWidth sets the box width
func (b *BoxComponent) WithWidth(width int) *BoxComponent {
	b.Width = width
	return b
}

// Render outputs the bordered box
func (b *BoxComponent) Render() string {
	style := Box
	if b.Width > 0 {
		style = style.Width(b.Width)
	}

	content := b.Content
	if b.Title != "" {
		content = Header.Render(b.Title) + "\n" + content
	}

	return style.Render(content)
}
