package extract

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridWords lays out a page of words on a regular column grid: one line per
// input row, columns starting at fixed x positions.
func gridWords(rows [][]string, colX []float64) []pdf.Text {
	var texts []pdf.Text
	y := 700.0
	for _, row := range rows {
		for i, cell := range row {
			if cell == "" {
				continue
			}
			texts = append(texts, pdf.Text{
				S: cell,
				X: colX[i],
				Y: y,
				W: float64(len(cell)) * 5,
			})
		}
		y -= 14
	}
	return texts
}

func TestAssembleWordsJoinsAdjacentRuns(t *testing.T) {
	texts := []pdf.Text{
		{S: "COF", X: 100, Y: 700, W: 15},
		{S: "FEE", X: 115.5, Y: 700, W: 15}, // within joinGap of previous run
		{S: "4.50", X: 300, Y: 700, W: 20},
		{S: "NEXT", X: 100, Y: 686, W: 20},
	}

	lines := assembleWords(texts)

	require.Len(t, lines, 2)
	require.Len(t, lines[0], 2)
	assert.Equal(t, "COFFEE", lines[0][0].text)
	assert.Equal(t, "4.50", lines[0][1].text)
	assert.Equal(t, "NEXT", lines[1][0].text)
}

func TestLatticeTableFromAlignedGrid(t *testing.T) {
	rows := [][]string{
		{"Date", "Description", "Amount"},
		{"01/02/2024", "COFFEE", "4.50"},
		{"01/03/2024", "LUNCH", "12.00"},
		{"01/04/2024", "TAXI", "22.10"},
	}
	lines := assembleWords(gridWords(rows, []float64{72, 180, 420}))

	got, ok := latticeTable(lines)

	require.True(t, ok)
	assert.Equal(t, []string{"col0", "col1", "col2"}, got.Columns)
	require.Len(t, got.Rows, 4)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, got.Rows[0])
	assert.Equal(t, []string{"01/03/2024", "LUNCH", "12.00"}, got.Rows[2])
}

func TestLatticeRejectsProse(t *testing.T) {
	// Ragged left edges: no column is corroborated by enough lines.
	texts := []pdf.Text{
		{S: "Your", X: 72, Y: 700, W: 20},
		{S: "statement", X: 96, Y: 700, W: 45},
		{S: "is", X: 80, Y: 686, W: 10},
		{S: "ready", X: 94, Y: 686, W: 25},
		{S: "now", X: 120, Y: 672, W: 18},
	}

	_, ok := latticeTable(assembleWords(texts))
	assert.False(t, ok)
}

func TestStreamTableSplitsOnWideGaps(t *testing.T) {
	rows := [][]string{
		{"01/02/2024", "COFFEE SHOP", "4.50"},
		{"01/03/2024", "BOOK STORE", "30.00"},
	}
	lines := assembleWords(gridWords(rows, []float64{72, 200, 400}))

	got, ok := streamTable(lines)

	require.True(t, ok)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, []string{"01/02/2024", "COFFEE SHOP", "4.50"}, got.Rows[0])
}

func TestStreamIgnoresSingleCellLines(t *testing.T) {
	texts := []pdf.Text{
		{S: "STATEMENT", X: 72, Y: 700, W: 50},
		{S: "SUMMARY", X: 72, Y: 686, W: 45},
	}

	_, ok := streamTable(assembleWords(texts))
	assert.False(t, ok)
}

func TestPageTablePromotesHeader(t *testing.T) {
	rows := [][]string{
		{"Date", "Description", "Amount"},
		{"01/02/2024", "COFFEE", "4.50"},
	}

	got, ok := pageTable(rows)

	require.True(t, ok)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, got.Columns)
	require.Len(t, got.Rows, 1)
}

func TestPageTableNeedsBodyRows(t *testing.T) {
	_, ok := pageTable([][]string{{"Header", "Only"}})
	assert.False(t, ok)
}

func TestParseTabulaCSV(t *testing.T) {
	out := []byte("Date,Description,Amount\n01/02/2024,COFFEE,4.50\n01/03/2024,LUNCH,\"1,200.00\"\n")

	got, err := parseTabulaCSV(out)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"col0", "col1", "col2"}, got[0].Columns)
	require.Len(t, got[0].Rows, 3)
	assert.Equal(t, "1,200.00", got[0].Rows[2][2])
}

func TestParseTabulaCSVEmpty(t *testing.T) {
	got, err := parseTabulaCSV(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
