// Package sink persists ledgers: a delimited flat file for the
// categorization collaborator and a grouped JSON structure for inspection.
package sink

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ledgerline/ledgerline/internal/table"
)

// Well-known output names the downstream collaborators read.
const (
	CombinedCSVName  = "all_transactions.csv"
	CombinedJSONName = "all_transactions.json"
	StructuredCSV    = "data.csv"
)

// WriteCSV writes the table as comma-delimited UTF-8 with a header row.
func WriteCSV(path string, t table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	for _, r := range t.Rows {
		if err := w.Write(r); err != nil {
			return fmt.Errorf("writing row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

// WriteGroupedJSON writes the cardholder-grouped ledger as indented JSON.
// Row order within each group is preserved; group keys serialize in sorted
// order, which keeps the file diffable across runs.
func WriteGroupedJSON(path string, grouped map[string][]map[string]any) error {
	data, err := json.MarshalIndent(grouped, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling grouped ledger: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// TableCSVName names the per-table debug file for candidate index i of the
// given source document stem.
func TableCSVName(stem string, i int) string {
	return fmt.Sprintf("%s_table_%d.csv", stem, i)
}
