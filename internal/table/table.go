// Package table renders column-aligned listings for the terminal.
//
// Widths are measured in terminal cells, so braille spinner frames, box
// drawing glyphs and East Asian text line up with plain ASCII.
package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column represents a table column with its configuration.
type Column struct {
	Header   string
	MinWidth int
	MaxWidth int // 0 means unlimited
	Align    Alignment
}

// Alignment specifies how content should be aligned within a column.
type Alignment int

const (
	// AlignLeft aligns content to the left.
	AlignLeft Alignment = iota
	// AlignRight aligns content to the right.
	AlignRight
)

const (
	columnSeparator    = " │ "
	separatorJunction  = "─┼─"
	bold               = "\033[1m"
	reset              = "\033[0m"
	truncationEllipsis = "..."
)

// Table represents a table with columns and rows.
type Table struct {
	columns []Column
	rows    [][]string
	widths  []int
}

// New creates a new table with the specified columns.
func New(columns ...Column) *Table {
	t := &Table{
		columns: columns,
		widths:  make([]int, len(columns)),
	}
	for i, col := range columns {
		t.widths[i] = max(runewidth.StringWidth(col.Header), col.MinWidth)
	}
	return t
}

// AddRow adds a row of values. Missing values are blank; extra values are
// dropped.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)

	for i, val := range row {
		t.widths[i] = max(t.widths[i], runewidth.StringWidth(val))
	}
	t.rows = append(t.rows, row)
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// finalWidths applies the max width constraints.
func (t *Table) finalWidths() []int {
	widths := make([]int, len(t.widths))
	for i, col := range t.columns {
		widths[i] = t.widths[i]
		if col.MaxWidth > 0 {
			widths[i] = min(widths[i], col.MaxWidth)
		}
	}
	return widths
}

// formatCell truncates and pads value to exactly width cells.
func formatCell(value string, width int, align Alignment) string {
	value = runewidth.Truncate(value, width, truncationEllipsis)
	if align == AlignRight {
		return runewidth.FillLeft(value, width)
	}
	return runewidth.FillRight(value, width)
}

// RenderHeader returns the formatted header row in bold.
func (t *Table) RenderHeader() string {
	widths := t.finalWidths()
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = formatCell(col.Header, widths[i], col.Align)
	}
	return bold + strings.Join(parts, columnSeparator) + reset
}

// RenderSeparator returns the line between the header and the rows.
func (t *Table) RenderSeparator() string {
	widths := t.finalWidths()
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return strings.Join(parts, separatorJunction)
}

// RenderRow returns the formatted row at index, or "" when out of range.
func (t *Table) RenderRow(index int) string {
	return t.renderRow(index, -1, "")
}

func (t *Table) renderRow(index, highlight int, code string) string {
	if index < 0 || index >= len(t.rows) {
		return ""
	}

	widths := t.finalWidths()
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = formatCell(t.rows[index][i], widths[i], col.Align)
		if i == highlight {
			parts[i] = code + parts[i] + reset
		}
	}
	return strings.Join(parts, columnSeparator)
}

// Render returns the complete table as a string without a trailing newline.
func (t *Table) Render() string {
	lines := []string{t.RenderHeader(), t.RenderSeparator()}
	for i := range t.rows {
		lines = append(lines, t.RenderRow(i))
	}
	return strings.Join(lines, "\n")
}

// PrintOptions configures how the table is printed.
type PrintOptions struct {
	// Indent is the prefix added to each line.
	Indent string
	// HighlightColumn is the 0-based column to color, or -1 for none.
	HighlightColumn int
	// HighlightCode is the ANSI escape sequence used for the highlighted column.
	HighlightCode string
}

// DefaultPrintOptions returns default print options.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		Indent:          "  ",
		HighlightColumn: -1,
	}
}

// Print writes the table to w surrounded by blank lines.
func (t *Table) Print(w io.Writer, opts PrintOptions) error {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s%s\n", opts.Indent, t.RenderHeader())
	fmt.Fprintf(&b, "%s%s\n", opts.Indent, t.RenderSeparator())
	for i := range t.rows {
		fmt.Fprintf(&b, "%s%s\n", opts.Indent, t.renderRow(i, opts.HighlightColumn, opts.HighlightCode))
	}
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
