package extract

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os/exec"

	"github.com/ledgerline/ledgerline/internal/table"
)

// tabulaBinary is the CLI the secondary backend shells out to. It needs a
// Java runtime, which many hosts won't have; absence is a skip, not a
// failure.
const tabulaBinary = "tabula"

// tabulaSource wraps the external tabula extractor in both its lattice and
// stream flavors.
type tabulaSource struct {
	lattice bool
}

func (s *tabulaSource) Name() string {
	if s.lattice {
		return "tabula-lattice"
	}
	return "tabula-stream"
}

func (s *tabulaSource) Extract(ctx context.Context, doc *Document) ([]table.Table, error) {
	bin, err := exec.LookPath(tabulaBinary)
	if err != nil {
		return nil, ErrBackendUnavailable
	}

	flavor := "--stream"
	if s.lattice {
		flavor = "--lattice"
	}
	cmd := exec.CommandContext(ctx, bin, "--pages", "all", "--format", "CSV", flavor, doc.Path)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", s.Name(), err)
	}
	return parseTabulaCSV(out)
}

// parseTabulaCSV reads tabula's concatenated CSV output into one raw
// candidate with positional columns; the cleaner's header promotion sorts
// out the real header row.
func parseTabulaCSV(out []byte) ([]table.Table, error) {
	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing tabula csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	width := 0
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}
	t := table.Table{Columns: table.PositionalColumns(width), Rows: records}
	t.PadRows()
	return []table.Table{t}, nil
}
