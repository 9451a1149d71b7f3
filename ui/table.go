package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Column alignments.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// TableColumn represents a table column configuration
type TableColumn struct {
	Header string
	Width  int
	Align  string
}

// TableRenderer renders data in table format
type TableRenderer struct {
	columns []TableColumn
	rows    [][]string
}

// NewTable creates a new table renderer
func NewTable() *TableRenderer {
	return &TableRenderer{}
}

// AddColumn adds a column to the table
func (t *TableRenderer) AddColumn(header string, width int, align string) *TableRenderer {
	if align == "" {
		align = AlignLeft
	}
	t.columns = append(t.columns, TableColumn{
		Header: header,
		Width:  width,
		Align:  align,
	})
	return t
}

// AddRow adds a data row to the table. Cells may already be styled; padding
// is computed on their printable width.
func (t *TableRenderer) AddRow(cells ...string) *TableRenderer {
	t.rows = append(t.rows, cells)
	return t
}

// Render outputs the formatted table
func (t *TableRenderer) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	lines := make([]string, 0, len(t.rows)+2)

	headerCells := make([]string, len(t.columns))
	sepCells := make([]string, len(t.columns))
	for i, col := range t.columns {
		style := Bold
		if i == 0 {
			style = Header
		}
		headerCells[i] = style.Render(formatCell(col.Header, col.Width, col.Align))
		sepCells[i] = Muted.Render(strings.Repeat("─", col.Width))
	}
	lines = append(lines, strings.Join(headerCells, "  "), strings.Join(sepCells, "  "))

	for _, row := range t.rows {
		rowCells := make([]string, len(t.columns))
		for i, col := range t.columns {
			var cellValue string
			if i < len(row) {
				cellValue = row[i]
			}
			rowCells[i] = formatCell(cellValue, col.Width, col.Align)
		}
		lines = append(lines, strings.Join(rowCells, "  "))
	}

	return strings.Join(lines, "\n")
}

// formatCell pads or truncates text to width. Width is measured on the
// printable text so styled cells line up.
func formatCell(text string, width int, align string) string {
	if ansi.StringWidth(text) > width {
		tail := "..."
		if width <= 3 {
			tail = ""
		}
		return ansi.Truncate(text, width, tail)
	}

	padding := width - ansi.StringWidth(text)
	switch align {
	case AlignCenter:
		left := padding / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", padding-left)
	case AlignRight:
		return strings.Repeat(" ", padding) + text
	default:
		return text + strings.Repeat(" ", padding)
	}
}
