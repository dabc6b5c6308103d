package extract

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// word is one horizontal run of glyphs on a page.
type word struct {
	x, y, w float64
	text    string
}

func (w word) right() float64 { return w.x + w.w }

const (
	// Glyph runs closer than joinGap belong to the same word.
	joinGap = 1.5
	// Texts whose baselines differ by less than lineTol share a line.
	lineTol = 2.0
)

// assembleWords groups raw positioned texts into lines of words, top to
// bottom, left to right. PDF extraction yields per-glyph or per-fragment
// runs; column detection needs word granularity.
func assembleWords(texts []pdf.Text) [][]word {
	if len(texts) == 0 {
		return nil
	}
	sorted := append([]pdf.Text(nil), texts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		// PDF y grows upward, so larger y comes first.
		if diff(sorted[i].Y, sorted[j].Y) > lineTol {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines [][]word
	var cur []word
	curY := sorted[0].Y
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, cur)
			cur = nil
		}
	}
	for _, t := range sorted {
		if t.S == "" {
			continue
		}
		if diff(t.Y, curY) > lineTol {
			flush()
			curY = t.Y
		}
		if n := len(cur); n > 0 && t.X-cur[n-1].right() <= joinGap {
			cur[n-1].text += t.S
			cur[n-1].w = t.X + t.W - cur[n-1].x
			continue
		}
		cur = append(cur, word{x: t.X, y: t.Y, w: t.W, text: t.S})
	}
	flush()

	for _, line := range lines {
		for i := range line {
			line[i].text = strings.TrimSpace(line[i].text)
		}
	}
	return lines
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
