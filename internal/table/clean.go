package table

import (
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	digitRe  = regexp.MustCompile(`\d`)
	letterRe = regexp.MustCompile(`[a-zA-Z]`)
	colNRe   = regexp.MustCompile(`^(col)?\d*$`)
)

// separator glyphs that mark ruled rows in text-extracted tables.
func isSeparatorCell(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "-", "—", "–":
		return true
	}
	return false
}

// Clean applies the full defensive cleaning sequence to one raw candidate
// table: header promotion, column normalization, structural pruning,
// description and amount normalization, date normalization, row filtering,
// deduplication and canonical column ordering. A table that cleans down to
// zero rows comes back empty and should be dropped by the caller.
//
// now anchors year-less date parsing. log receives row-level drop counts;
// nothing at this level is an error.
func Clean(raw Table, now time.Time, log zerolog.Logger) Table {
	t := raw.Clone()
	t.PadRows()
	if t.IsEmpty() {
		return Table{}
	}

	promoteHeader(&t)
	t.Columns = NormalizeColumns(t.Columns)
	pruneStructure(&t)
	if t.IsEmpty() {
		return Table{}
	}

	normalizeDescriptions(&t)
	amountValid := deriveAmounts(&t)
	normalizeDates(&t, now)
	dropped := filterRows(&t, amountValid)
	if dropped > 0 {
		log.Debug().Int("rows", dropped).Msg("dropped rows without usable amount or description")
	}

	dedupeColumns(&t)
	dedupeRows(&t)
	reorderColumns(&t)
	return t
}

// promoteHeader promotes the first data row to column headers when the
// current labels are auto-generated (positional) and the first row is
// mostly non-numeric text. Extraction strategies that cannot see the header
// band hand tables over in exactly that shape.
func promoteHeader(t *Table) {
	if len(t.Rows) == 0 || !autoGeneratedColumns(t.Columns) {
		return
	}
	first := t.Rows[0]
	numeric := 0
	hasLetter := false
	for _, cell := range first {
		s := strings.TrimSpace(cell)
		if digitRe.MatchString(s) {
			numeric++
		}
		if letterRe.MatchString(s) {
			hasLetter = true
		}
	}
	threshold := len(first) / 3
	if threshold < 1 {
		threshold = 1
	}
	if numeric >= threshold || !hasLetter {
		return
	}
	cols := make([]string, len(first))
	for i, cell := range first {
		cols[i] = strings.ToLower(collapseSpace(cell))
	}
	t.Columns = cols
	t.Rows = t.Rows[1:]
}

func autoGeneratedColumns(cols []string) bool {
	for _, c := range cols {
		if !colNRe.MatchString(strings.TrimSpace(c)) {
			return false
		}
	}
	return true
}

// pruneStructure drops fully-empty columns, fully-empty rows and rows made
// of separator glyphs only.
func pruneStructure(t *Table) {
	// Columns where every cell is blank.
	keep := make([]bool, len(t.Columns))
	for i := range t.Columns {
		for _, r := range t.Rows {
			if i < len(r) && strings.TrimSpace(r[i]) != "" {
				keep[i] = true
				break
			}
		}
	}
	cols := t.Columns[:0:0]
	for i, c := range t.Columns {
		if keep[i] {
			cols = append(cols, c)
		}
	}
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		nr := make([]string, 0, len(cols))
		for i := range t.Columns {
			if keep[i] {
				nr = append(nr, r[i])
			}
		}
		allSep := true
		for _, cell := range nr {
			if !isSeparatorCell(cell) {
				allSep = false
				break
			}
		}
		if allSep {
			continue
		}
		rows = append(rows, nr)
	}
	t.Columns = cols
	t.Rows = rows
}

func normalizeDescriptions(t *Table) {
	i := t.ColumnIndex(ColDescription)
	if i < 0 {
		return
	}
	for _, r := range t.Rows {
		r[i] = collapseSpace(r[i])
	}
}

// deriveAmounts fills the amount column. When a direct amount column exists
// its cells are parsed in place; otherwise amount = credit − debit with
// missing or unparseable contributions counted as zero. The returned slice
// marks which rows ended up with a usable amount.
func deriveAmounts(t *Table) []bool {
	valid := make([]bool, len(t.Rows))
	if ai := t.ColumnIndex(ColAmount); ai >= 0 {
		for ri, r := range t.Rows {
			if v, ok := ParseAmount(r[ai]); ok {
				r[ai] = FormatAmount(v)
				valid[ri] = true
			}
		}
		return valid
	}

	di := t.ColumnIndex(ColDebit)
	ci := t.ColumnIndex(ColCredit)
	t.Columns = append(t.Columns, ColAmount)
	for ri, r := range t.Rows {
		var debit, credit float64
		if di >= 0 {
			debit, _ = ParseAmount(r[di])
		}
		if ci >= 0 {
			credit, _ = ParseAmount(r[ci])
		}
		t.Rows[ri] = append(r, FormatAmount(credit-debit))
		valid[ri] = true
	}
	return valid
}

func normalizeDates(t *Table, now time.Time) {
	i := t.ColumnIndex(ColDate)
	if i < 0 {
		return
	}
	for _, r := range t.Rows {
		if iso, ok := NormalizeDate(r[i], now); ok {
			r[i] = iso
		}
		// Unparseable dates stay raw; the row survives on its amount.
	}
}

// filterRows drops rows with an empty description (when that column exists)
// or without a usable amount. Returns how many were dropped.
func filterRows(t *Table, amountValid []bool) int {
	desc := t.ColumnIndex(ColDescription)
	rows := make([][]string, 0, len(t.Rows))
	dropped := 0
	for ri, r := range t.Rows {
		if desc >= 0 && strings.TrimSpace(r[desc]) == "" {
			dropped++
			continue
		}
		if !amountValid[ri] {
			dropped++
			continue
		}
		rows = append(rows, r)
	}
	t.Rows = rows
	return dropped
}

// dedupeColumns keeps the first occurrence of each column name.
func dedupeColumns(t *Table) {
	seen := make(map[string]bool, len(t.Columns))
	keep := make([]bool, len(t.Columns))
	for i, c := range t.Columns {
		if !seen[c] {
			seen[c] = true
			keep[i] = true
		}
	}
	cols := t.Columns[:0:0]
	for i, c := range t.Columns {
		if keep[i] {
			cols = append(cols, c)
		}
	}
	for ri, r := range t.Rows {
		nr := make([]string, 0, len(cols))
		for i := range t.Columns {
			if keep[i] {
				nr = append(nr, r[i])
			}
		}
		t.Rows[ri] = nr
	}
	t.Columns = cols
}

// dedupeRows removes exact duplicates; rows differing in any single cell are
// both retained.
func dedupeRows(t *Table) {
	seen := make(map[string]bool, len(t.Rows))
	rows := t.Rows[:0:0]
	for _, r := range t.Rows {
		key := strings.Join(r, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, r)
	}
	t.Rows = rows
}

// preferredOrder is the canonical leading column order for cleaned tables.
var preferredOrder = []string{ColDate, ColDescription, ColAmount, ColCardholder, ColCardLast4}

func reorderColumns(t *Table) {
	order := make([]int, 0, len(t.Columns))
	taken := make([]bool, len(t.Columns))
	for _, want := range preferredOrder {
		for i, c := range t.Columns {
			if c == want && !taken[i] {
				order = append(order, i)
				taken[i] = true
			}
		}
	}
	for i := range t.Columns {
		if !taken[i] {
			order = append(order, i)
		}
	}
	cols := make([]string, len(order))
	for oi, i := range order {
		cols[oi] = t.Columns[i]
	}
	for ri, r := range t.Rows {
		nr := make([]string, len(order))
		for oi, i := range order {
			nr[oi] = r[i]
		}
		t.Rows[ri] = nr
	}
	t.Columns = cols
}
