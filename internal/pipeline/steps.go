package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledgerline/ledgerline/internal/extract"
	"github.com/ledgerline/ledgerline/internal/logger"
	"github.com/ledgerline/ledgerline/internal/sink"
	"github.com/ledgerline/ledgerline/internal/table"
	"github.com/ledgerline/ledgerline/internal/warehouse"
)

// TableExtractor pulls candidate tables out of one PDF.
type TableExtractor interface {
	ExtractTables(ctx context.Context, path string) ([]table.Table, error)
}

// Mirror copies statement PDFs from a gs:// prefix into a local directory.
type Mirror interface {
	MirrorPrefix(ctx context.Context, uri, destDir string) ([]string, error)
}

// LedgerInserter streams the final ledger into a warehouse.
type LedgerInserter interface {
	InsertLedger(ctx context.Context, rows []*warehouse.TransactionRow) error
}

// ScanStep resolves the input into a sorted list of PDF paths, mirroring
// from Cloud Storage first when the input is a gs:// URI.
type ScanStep struct {
	Mirror Mirror
}

func (s *ScanStep) Name() string { return "scan" }

func (s *ScanStep) Execute(ctx context.Context, state *State) error {
	log := logger.FromContext(ctx)

	dir := state.Input
	if strings.HasPrefix(state.Input, "gs://") {
		if s.Mirror == nil {
			return fmt.Errorf("gs:// input %q but no mirror configured", state.Input)
		}
		log.Info().Str("uri", state.Input).Str("dir", state.StatementsDir).Msg("mirroring statements from GCS")
		if _, err := s.Mirror.MirrorPrefix(ctx, state.Input, state.StatementsDir); err != nil {
			return err
		}
		dir = state.StatementsDir
	}

	docs, err := extract.ListStatements(dir)
	if err != nil {
		return err
	}
	state.Documents = docs
	log.Info().Int("count", len(docs)).Str("dir", dir).Msg("found statement PDFs")
	return nil
}

// ExtractCleanStep runs the extraction strategies over every document and
// cleans each candidate table. Per-document failures are logged and
// skipped so one bad PDF never sinks the batch. Each surviving table is
// also written as its own CSV for inspection.
type ExtractCleanStep struct {
	Extractor TableExtractor
}

func (s *ExtractCleanStep) Name() string { return "extract" }

func (s *ExtractCleanStep) Execute(ctx context.Context, state *State) error {
	log := logger.FromContext(ctx)
	now := time.Now()

	if err := os.MkdirAll(state.OutputDir, 0o755); err != nil {
		return err
	}

	for _, path := range state.Documents {
		log.Info().Str("file", filepath.Base(path)).Msg("processing statement")

		candidates, err := s.Extractor.ExtractTables(ctx, path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("extraction failed, skipping document")
			continue
		}
		if len(candidates) == 0 {
			log.Warn().Str("file", path).Msg("no tables found in document")
			continue
		}

		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		kept := 0
		for _, raw := range candidates {
			cleaned := table.Clean(raw, now, log)
			if cleaned.IsEmpty() {
				continue
			}
			csvPath := filepath.Join(state.OutputDir, sink.TableCSVName(stem, kept+1))
			if err := sink.WriteCSV(csvPath, cleaned); err != nil {
				return err
			}
			state.Cleaned = append(state.Cleaned, cleaned)
			kept++
		}
		log.Info().Str("file", filepath.Base(path)).Int("candidates", len(candidates)).Int("kept", kept).Msg("cleaned document tables")
		if kept > 0 {
			state.DocsProcessed++
		}
	}
	return nil
}

// CombineStep merges every cleaned table into one ledger over the union of
// their columns.
type CombineStep struct{}

func (s *CombineStep) Name() string { return "combine" }

func (s *CombineStep) Execute(ctx context.Context, state *State) error {
	log := logger.FromContext(ctx)

	if len(state.Cleaned) == 0 {
		log.Warn().Msg("nothing to combine, no usable tables extracted")
		state.Empty = true
		state.Grouped = map[string][]map[string]any{}
		return nil
	}
	state.Combined = table.Combine(state.Cleaned)
	log.Info().Int("tables", len(state.Cleaned)).Int("rows", len(state.Combined.Rows)).Msg("combined tables")
	return nil
}

// SanitizeStep applies the final row filter to the combined ledger.
type SanitizeStep struct{}

func (s *SanitizeStep) Name() string { return "sanitize" }

func (s *SanitizeStep) Execute(ctx context.Context, state *State) error {
	if state.Empty {
		return nil
	}
	log := logger.FromContext(ctx)

	sanitized, dropped := table.Sanitize(state.Combined)
	state.Combined = sanitized
	state.RowsDropped = dropped
	state.RowsKept = len(sanitized.Rows)
	log.Info().Int("kept", state.RowsKept).Int("dropped", dropped).Msg("sanitized ledger")
	return nil
}

// GroupStep buckets the ledger rows by cardholder for the JSON output.
type GroupStep struct{}

func (s *GroupStep) Name() string { return "group" }

func (s *GroupStep) Execute(ctx context.Context, state *State) error {
	if state.Empty {
		return nil
	}
	state.Grouped = table.GroupByCardholder(state.Combined)
	return nil
}

// WriteOutputsStep writes the combined CSV and grouped JSON. When the run
// produced nothing it writes no files at all.
type WriteOutputsStep struct{}

func (s *WriteOutputsStep) Name() string { return "write" }

func (s *WriteOutputsStep) Execute(ctx context.Context, state *State) error {
	log := logger.FromContext(ctx)

	if state.Empty {
		log.Warn().Msg("no combined output written")
		return nil
	}

	csvPath := filepath.Join(state.OutputDir, sink.CombinedCSVName)
	if err := sink.WriteCSV(csvPath, state.Combined); err != nil {
		return err
	}
	jsonPath := filepath.Join(state.OutputDir, sink.CombinedJSONName)
	if err := sink.WriteGroupedJSON(jsonPath, state.Grouped); err != nil {
		return err
	}
	log.Info().
		Str("csv", csvPath).
		Str("json", jsonPath).
		Int("documents", state.DocsProcessed).
		Int("rows", state.RowsKept).
		Msg("wrote combined outputs")
	return nil
}

// WarehouseStep streams the final ledger into BigQuery. It is only wired
// into the pipeline when a warehouse is configured.
type WarehouseStep struct {
	Inserter LedgerInserter
}

func (s *WarehouseStep) Name() string { return "warehouse" }

func (s *WarehouseStep) Execute(ctx context.Context, state *State) error {
	if state.Empty {
		return nil
	}
	log := logger.FromContext(ctx)

	rows := warehouse.RowsFromLedger(state.Combined, state.RunID)
	if err := s.Inserter.InsertLedger(ctx, rows); err != nil {
		return err
	}
	log.Info().Int("rows", len(rows)).Msg("inserted ledger into warehouse")
	return nil
}

// NewExtraction assembles the standard extraction pipeline. The mirror and
// inserter are optional; a nil inserter omits the warehouse step.
func NewExtraction(ex TableExtractor, mirror Mirror, inserter LedgerInserter) *Pipeline {
	steps := []Step{
		&ScanStep{Mirror: mirror},
		&ExtractCleanStep{Extractor: ex},
		&CombineStep{},
		&SanitizeStep{},
		&GroupStep{},
		&WriteOutputsStep{},
	}
	if inserter != nil {
		steps = append(steps, &WarehouseStep{Inserter: inserter})
	}
	return New(steps...)
}
