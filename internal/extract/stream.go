package extract

import (
	"context"

	"github.com/ledgerline/ledgerline/internal/table"
)

// Horizontal gaps wider than cellGap split a line into cells.
const cellGap = 12.0

// streamSource infers table structure from whitespace alone: wide horizontal
// gaps inside a line mark cell boundaries, and lines agreeing on a cell
// count form the table body. Catches borderless statement tables that the
// lattice strategy rejects.
type streamSource struct{}

func (s *streamSource) Name() string { return "stream" }

func (s *streamSource) Extract(ctx context.Context, doc *Document) ([]table.Table, error) {
	var out []table.Table
	for n := 1; n <= doc.NumPages(); n++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		p := doc.Page(n)
		if p.V.IsNull() {
			continue
		}
		lines := assembleWords(p.Content().Text)
		if t, ok := streamTable(lines); ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func streamTable(lines [][]word) (table.Table, bool) {
	var rows [][]string
	width := 0
	for _, line := range lines {
		cells := splitCells(line)
		if len(cells) < 2 {
			// Single-cell lines are headings or prose, not table rows.
			continue
		}
		if len(cells) > width {
			width = len(cells)
		}
		rows = append(rows, cells)
	}
	if len(rows) < 2 {
		return table.Table{}, false
	}
	t := table.Table{Columns: table.PositionalColumns(width), Rows: rows}
	t.PadRows()
	return t, true
}

// splitCells breaks one line of words into cells on wide gaps, joining
// words within a cell by single spaces.
func splitCells(line []word) []string {
	var cells []string
	cur := ""
	for i, w := range line {
		if i > 0 && w.x-line[i-1].right() > cellGap {
			cells = append(cells, cur)
			cur = ""
		}
		if cur != "" {
			cur += " "
		}
		cur += w.text
	}
	if cur != "" {
		cells = append(cells, cur)
	}
	return cells
}
