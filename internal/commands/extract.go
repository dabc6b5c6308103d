package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/config"
	"github.com/ledgerline/ledgerline/internal/extract"
	"github.com/ledgerline/ledgerline/internal/gcs"
	"github.com/ledgerline/ledgerline/internal/logger"
	"github.com/ledgerline/ledgerline/internal/pipeline"
	"github.com/ledgerline/ledgerline/internal/warehouse"
)

func newExtractCommand() *cobra.Command {
	var input string
	var output string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract transaction tables from statement PDFs into combined CSV and JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if input != "" {
				cfg.Input = input
			}
			if output != "" {
				cfg.OutputDir = output
			}
			return runExtract(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "statements directory or gs:// prefix")
	cmd.Flags().StringVar(&output, "output", "", "output directory for CSV and JSON")

	return cmd
}

func runExtract(ctx context.Context, cfg config.Config) error {
	runID := uuid.NewString()
	log := logger.New().With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx, log)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	var mirror pipeline.Mirror
	if strings.HasPrefix(cfg.Input, "gs://") {
		mirror = gcs.Mirror{}
	}
	var inserter pipeline.LedgerInserter
	if cfg.BQProject != "" && cfg.BQDataset != "" {
		inserter = &warehouse.Inserter{ProjectID: cfg.BQProject, DatasetID: cfg.BQDataset}
	}

	state := &pipeline.State{
		RunID:         runID,
		Input:         cfg.Input,
		StatementsDir: cfg.StatementsDir,
		OutputDir:     cfg.OutputDir,
	}
	runner := extract.NewRunner(extract.DefaultSources()...)
	if err := pipeline.NewExtraction(runner, mirror, inserter).Execute(ctx, state); err != nil {
		log.Error().Err(err).Msg("extraction pipeline failed")
		return err
	}
	return nil
}
