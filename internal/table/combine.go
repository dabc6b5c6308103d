package table

import "strings"

// Combine reconciles cleaned tables with different column sets into one
// table: the column set is the first-seen union across all inputs, every
// table is reindexed onto that union (absent columns pad with empty cells,
// existing values are never altered) and rows are appended preserving both
// within-table and between-table order.
func Combine(tables []Table) Table {
	var union []string
	seen := make(map[string]bool)
	for _, t := range tables {
		for _, c := range t.Columns {
			if !seen[c] {
				seen[c] = true
				union = append(union, c)
			}
		}
	}

	out := Table{Columns: union}
	for _, t := range tables {
		idx := make([]int, len(union))
		for i, c := range union {
			idx[i] = t.ColumnIndex(c)
		}
		for _, r := range t.Rows {
			nr := make([]string, len(union))
			for i, src := range idx {
				if src >= 0 && src < len(r) {
					nr[i] = r[src]
				}
			}
			out.Rows = append(out.Rows, nr)
		}
	}
	return out
}

// Sanitize enforces the combined-ledger invariants: every row has a numeric
// amount (coercion failures are dropped) and a non-empty description when
// that column exists. Returns the sanitized table and the number of rows
// dropped.
func Sanitize(t Table) (Table, int) {
	out := Table{Columns: append([]string(nil), t.Columns...)}
	ai := t.ColumnIndex(ColAmount)
	di := t.ColumnIndex(ColDescription)
	dropped := 0
	for _, r := range t.Rows {
		if ai >= 0 {
			v, ok := ParseAmount(r[ai])
			if !ok {
				dropped++
				continue
			}
			r[ai] = FormatAmount(v)
		}
		if di >= 0 && strings.TrimSpace(r[di]) == "" {
			dropped++
			continue
		}
		out.Rows = append(out.Rows, r)
	}
	return out, dropped
}

// GroupKeyDefault is the grouping key used when the ledger has no
// cardholder dimension.
const GroupKeyDefault = "transactions"

// GroupByCardholder turns the sanitized ledger into a mapping from
// cardholder name to that cardholder's rows. The cardholder column becomes
// the map key and is removed from the nested rows. Without a cardholder
// column all rows land under GroupKeyDefault. Amounts are emitted as
// numbers, everything else as strings.
func GroupByCardholder(t Table) map[string][]map[string]any {
	grouped := make(map[string][]map[string]any)
	if t.IsEmpty() {
		return grouped
	}

	chi := t.ColumnIndex(ColCardholder)
	ai := t.ColumnIndex(ColAmount)
	for _, r := range t.Rows {
		key := GroupKeyDefault
		if chi >= 0 {
			key = r[chi]
		}
		row := make(map[string]any, len(t.Columns))
		for i, c := range t.Columns {
			if i == chi {
				continue
			}
			if i == ai {
				if v, ok := ParseAmount(r[i]); ok {
					row[c] = v
					continue
				}
			}
			row[c] = r[i]
		}
		grouped[key] = append(grouped[key], row)
	}
	return grouped
}
