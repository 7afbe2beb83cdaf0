// Package markdown renders sheet grids as Markdown pipe tables and reads
// them back.
package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ukaji3/sheet2md/pkg/sheet2md/parser"
)

// minColumnWidth keeps the separator row at least three dashes wide.
const minColumnWidth = 3

// Align is the horizontal alignment of a table column.
type Align int

const (
	// AlignLeft is used for text columns.
	AlignLeft Align = iota
	// AlignRight is used for columns whose body is numeric.
	AlignRight
)

// RenderTable renders rows as a pipe table. Row 0 is the header. The result
// has one line per row plus the separator line and no trailing newline.
// An empty grid renders as the empty string.
func RenderTable(rows [][]string) string {
	cols := columnCount(rows)
	if cols == 0 {
		return ""
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, cols)
		for j := 0; j < cols && j < len(row); j++ {
			cells[i][j] = escapeCell(row[j])
		}
	}

	widths := columnWidths(cells, cols)
	aligns := ColumnAlignments(cells, cols)

	lines := make([]string, 0, len(cells)+1)
	lines = append(lines, renderRow(cells[0], widths, aligns))
	lines = append(lines, renderSeparator(widths, aligns))
	for _, row := range cells[1:] {
		lines = append(lines, renderRow(row, widths, aligns))
	}
	return strings.Join(lines, "\n")
}

// ColumnAlignments right-aligns every column whose non-empty body cells are
// all numeric. Columns with an empty body stay left-aligned.
func ColumnAlignments(rows [][]string, cols int) []Align {
	aligns := make([]Align, cols)
	for col := 0; col < cols; col++ {
		numeric := false
		for _, row := range rows[min(1, len(rows)):] {
			if col >= len(row) || row[col] == "" {
				continue
			}
			if !parser.IsNumeric(row[col]) {
				numeric = false
				break
			}
			numeric = true
		}
		if numeric {
			aligns[col] = AlignRight
		}
	}
	return aligns
}

func columnCount(rows [][]string) int {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	return cols
}

// columnWidths measures display width, so wide CJK runes count twice.
func columnWidths(cells [][]string, cols int) []int {
	widths := make([]int, cols)
	for i := range widths {
		widths[i] = minColumnWidth
	}
	for _, row := range cells {
		for j, cell := range row {
			widths[j] = max(widths[j], runewidth.StringWidth(cell))
		}
	}
	return widths
}

func renderRow(row []string, widths []int, aligns []Align) string {
	var b strings.Builder
	b.WriteString("|")
	for j, cell := range row {
		b.WriteString(" ")
		if aligns[j] == AlignRight {
			b.WriteString(runewidth.FillLeft(cell, widths[j]))
		} else {
			b.WriteString(runewidth.FillRight(cell, widths[j]))
		}
		b.WriteString(" |")
	}
	return b.String()
}

func renderSeparator(widths []int, aligns []Align) string {
	var b strings.Builder
	b.WriteString("|")
	for j, w := range widths {
		dashes := strings.Repeat("-", w+1)
		if aligns[j] == AlignRight {
			b.WriteString(dashes + ":")
		} else {
			b.WriteString(":" + dashes)
		}
		b.WriteString("|")
	}
	return b.String()
}

var cellReplacer = strings.NewReplacer(
	"\r\n", "<br>",
	"\n", "<br>",
	"\r", "<br>",
	"|", `\|`,
)

// escapeCell keeps a value on one line and inside its column.
func escapeCell(s string) string {
	return cellReplacer.Replace(strings.TrimSpace(s))
}
