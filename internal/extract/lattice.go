package extract

import (
	"context"
	"sort"
	"strings"

	"github.com/ledgerline/ledgerline/internal/table"
)

const (
	// Word starts within edgeTol points snap to the same column edge.
	edgeTol = 3.0
	// A column edge must be corroborated by at least this many lines.
	latticeMinSupport = 3
)

// latticeSource detects tables from hard column alignment: the left edges of
// cell text repeat across many lines when cells sit inside ruled borders.
// It is the strictest strategy, favored first because its false positives
// are rare.
type latticeSource struct{}

func (s *latticeSource) Name() string { return "lattice" }

func (s *latticeSource) Extract(ctx context.Context, doc *Document) ([]table.Table, error) {
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
		if t, ok := latticeTable(lines); ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// latticeTable builds one candidate per page from corroborated column edges.
func latticeTable(lines [][]word) (table.Table, bool) {
	edges := columnEdges(lines)
	if len(edges) < 2 {
		return table.Table{}, false
	}

	var rows [][]string
	for _, line := range lines {
		cells := make([]string, len(edges))
		assigned := 0
		for _, w := range line {
			col := edgeIndex(edges, w.x)
			if cells[col] != "" {
				cells[col] += " "
			}
			cells[col] += w.text
			assigned++
		}
		if assigned == 0 {
			continue
		}
		nonEmpty := 0
		for _, c := range cells {
			if strings.TrimSpace(c) != "" {
				nonEmpty++
			}
		}
		if nonEmpty < 2 {
			continue
		}
		rows = append(rows, cells)
	}
	if len(rows) < 2 {
		return table.Table{}, false
	}
	return table.Table{Columns: table.PositionalColumns(len(edges)), Rows: rows}, true
}

// columnEdges clusters word left edges and keeps clusters supported by
// enough lines to look like a column grid rather than prose.
func columnEdges(lines [][]word) []float64 {
	type cluster struct {
		center  float64
		support int
	}
	var starts []float64
	for _, line := range lines {
		for _, w := range line {
			starts = append(starts, w.x)
		}
	}
	if len(starts) == 0 {
		return nil
	}
	sort.Float64s(starts)

	var clusters []cluster
	cur := cluster{center: starts[0], support: 1}
	for _, x := range starts[1:] {
		if x-cur.center <= edgeTol {
			// Running mean keeps the center stable for slightly jittered edges.
			cur.center += (x - cur.center) / float64(cur.support+1)
			cur.support++
			continue
		}
		clusters = append(clusters, cur)
		cur = cluster{center: x, support: 1}
	}
	clusters = append(clusters, cur)

	minSupport := latticeMinSupport
	if half := len(lines) / 2; half > minSupport {
		minSupport = half
	}
	var edges []float64
	for _, c := range clusters {
		if c.support >= minSupport {
			edges = append(edges, c.center)
		}
	}
	return edges
}

// edgeIndex buckets a word into the column whose edge it starts at or after.
func edgeIndex(edges []float64, x float64) int {
	for i := len(edges) - 1; i >= 0; i-- {
		if x >= edges[i]-edgeTol {
			return i
		}
	}
	return 0
}
