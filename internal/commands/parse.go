package commands

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/config"
	"github.com/ledgerline/ledgerline/internal/docai"
	"github.com/ledgerline/ledgerline/internal/logger"
	"github.com/ledgerline/ledgerline/internal/sink"
)

func newParseCommand() *cobra.Command {
	var input string
	var temp string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse statements with document understanding into a five-column ledger CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if input != "" {
				cfg.Input = input
			}
			if temp != "" {
				cfg.TempDir = temp
			}
			return runParse(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "statements directory")
	cmd.Flags().StringVar(&temp, "temp", "", "directory for the parsed ledger CSV")

	return cmd
}

func runParse(ctx context.Context, cfg config.Config) error {
	log := logger.New()
	ctx = logger.WithContext(ctx, log)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	ex := docai.NewGeminiExtractor(cfg.GeminiModel)
	outPath := filepath.Join(cfg.TempDir, sink.StructuredCSV)
	rows, err := docai.RunParsing(ctx, ex, cfg.Input, outPath, cfg.Cardholders)
	if err != nil {
		log.Error().Err(err).Msg("statement parsing failed")
		return err
	}
	if rows > 0 {
		log.Info().Int("rows", rows).Str("path", outPath).Msg("parsing complete")
	}
	return nil
}
