package extract

import (
	"context"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/table"
)

// rowfallSource is the last-resort geometric strategy: take the library's
// own row segmentation page by page and split each physical row on wide
// gaps. The first row of each page block is treated as the header, the way
// page-wise table scraping tools hand tables over.
type rowfallSource struct{}

func (s *rowfallSource) Name() string { return "rowfall" }

func (s *rowfallSource) Extract(ctx context.Context, doc *Document) ([]table.Table, error) {
	var out []table.Table
	for n := 1; n <= doc.NumPages(); n++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		p := doc.Page(n)
		if p.V.IsNull() {
			continue
		}
		textRows, err := p.GetTextByRow()
		if err != nil {
			// A damaged page must not sink the remaining pages.
			continue
		}
		var rows [][]string
		for _, tr := range textRows {
			line := assembleWords(tr.Content)
			if len(line) == 0 {
				continue
			}
			rows = append(rows, splitCells(line[0]))
		}
		if t, ok := pageTable(rows); ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// pageTable promotes the first physical row to the header, mirroring
// page-wise extraction where the header band is part of the table body.
func pageTable(rows [][]string) (table.Table, bool) {
	if len(rows) < 2 {
		return table.Table{}, false
	}
	header := rows[0]
	width := len(header)
	for _, r := range rows[1:] {
		if len(r) > width {
			width = len(r)
		}
	}
	cols := make([]string, width)
	for i := range cols {
		if i < len(header) {
			cols[i] = header[i]
		} else {
			cols[i] = fmt.Sprintf("col%d", i)
		}
	}
	t := table.Table{Columns: cols, Rows: rows[1:]}
	t.PadRows()
	if t.IsEmpty() {
		return table.Table{}, false
	}
	return t, true
}
