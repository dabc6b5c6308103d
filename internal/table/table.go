// Package table holds the tabular data model shared by every extraction
// strategy, plus the cleaning, combining and sanitizing logic that turns
// raw candidate tables into one schema-consistent transaction ledger.
package table

import "strconv"

// Table is an ordered set of columns and string-valued rows. Raw candidates
// carry either positional labels ("col0", "col1", ...) or whatever header
// text the extraction strategy found; cleaned tables carry canonical labels.
type Table struct {
	Columns []string
	Rows    [][]string
}

// IsEmpty reports whether the table has no data rows.
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex returns the position of the named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, column name), or "" when the column is
// absent or the row is ragged.
func (t Table) Cell(row int, name string) string {
	i := t.ColumnIndex(name)
	if i < 0 || row >= len(t.Rows) || i >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][i]
}

// Clone returns a deep copy. Cleaning mutates tables in place, so callers
// that keep the raw candidate around copy first.
func (t Table) Clone() Table {
	out := Table{Columns: append([]string(nil), t.Columns...)}
	out.Rows = make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = append([]string(nil), r...)
	}
	return out
}

// PadRows widens every row to the column count with empty cells. Strategies
// that split rows on geometry can produce ragged rows.
func (t *Table) PadRows() {
	for i, r := range t.Rows {
		for len(r) < len(t.Columns) {
			r = append(r, "")
		}
		t.Rows[i] = r[:len(t.Columns)]
	}
}

// PositionalColumns returns "col0" .. "colN-1".
func PositionalColumns(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = "col" + strconv.Itoa(i)
	}
	return cols
}
