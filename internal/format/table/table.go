package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one table column.
type Column struct {
	Header string
	Align  Alignment
}

// Format pads the header and every row according to the widest cell in each
// column. Rows shorter than the column list are padded with empty cells.
func Format(columns []Column, rows [][]string) (string, []string) {
	if len(columns) == 0 {
		return "", nil
	}
	widths := make([]int, len(columns))
	for c, col := range columns {
		widths[c] = lipgloss.Width(col.Header)
	}
	for _, row := range rows {
		for c := 0; c < len(columns) && c < len(row); c++ {
			if w := lipgloss.Width(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
	}
	headers := make([]string, len(columns))
	for c, col := range columns {
		headers[c] = col.Header
	}
	header := formatRow(columns, widths, headers)
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = formatRow(columns, widths, row)
	}
	return header, out
}

func formatRow(columns []Column, widths []int, row []string) string {
	var b strings.Builder
	for c, col := range columns {
		cell := ""
		if c < len(row) {
			cell = row[c]
		}
		if c > 0 {
			b.WriteString("  ")
		}
		pad := widths[c] - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		if col.Align == AlignRight {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
			continue
		}
		b.WriteString(cell)
		if c < len(columns)-1 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return b.String()
}
