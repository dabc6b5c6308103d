package docai

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ledgerline/ledgerline/internal/extract"
	"github.com/ledgerline/ledgerline/internal/logger"
	"github.com/ledgerline/ledgerline/internal/sink"
	"github.com/ledgerline/ledgerline/internal/table"
)

// RunParsing processes every PDF statement in inputDir through the
// document-understanding extractor and writes the combined five-column
// ledger to outPath. A failing document contributes zero rows and the run
// continues; zero usable documents ends the run with no output file and no
// error. Returns the number of rows written.
func RunParsing(ctx context.Context, ex EntityExtractor, inputDir, outPath string, cardholders []string) (int, error) {
	log := logger.FromContext(ctx)

	files, err := extract.ListStatements(inputDir)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		log.Warn().Str("dir", inputDir).Msg("no PDF files found")
		return 0, nil
	}

	now := time.Now()
	var cleaned []table.Table
	for _, path := range files {
		log.Info().Str("file", filepath.Base(path)).Msg("processing statement")

		pdfBytes, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("cannot read statement, skipping")
			continue
		}
		entities, err := ex.ExtractEntities(ctx, pdfBytes)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("document understanding failed, skipping")
			continue
		}

		st := ParseStatement(entities, cardholders)
		t := Coalesce(st, now)
		if t.IsEmpty() {
			log.Warn().Str("file", path).Msg("no transactions extracted")
			continue
		}
		log.Info().Str("bank", st.BankName).Int("rows", len(t.Rows)).Msg("statement parsed")
		cleaned = append(cleaned, t)
	}

	if len(cleaned) == 0 {
		log.Warn().Msg("no transactions were processed or found in any file")
		return 0, nil
	}

	combined := table.Combine(cleaned)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}
	if err := sink.WriteCSV(outPath, combined); err != nil {
		return 0, err
	}
	log.Info().Int("rows", len(combined.Rows)).Str("path", outPath).Msg("combined data saved")
	return len(combined.Rows), nil
}
