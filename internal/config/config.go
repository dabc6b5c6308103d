// Package config loads pipeline configuration from the environment, with a
// .env file honored when present.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults mirror the conventional project layout: statements in, tables out.
const (
	DefaultStatementsDir = "./statements"
	DefaultOutputDir     = "./output_tables"
	DefaultTempDir       = "./temp"
	DefaultGeminiModel   = "gemini-2.5-flash"
	DefaultTimeout       = 5 * time.Minute
)

// Config holds every knob the pipeline reads.
type Config struct {
	// Input is a local directory of PDFs or a gs://bucket/prefix to mirror
	// into StatementsDir first.
	Input         string
	StatementsDir string
	OutputDir     string
	TempDir       string

	// Cardholders are the known names matched for sticky cardholder
	// labeling in the structured-document mode.
	Cardholders []string

	GeminiModel string
	Timeout     time.Duration

	// BigQuery warehouse sink; disabled while either field is empty.
	BQProject string
	BQDataset string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; missing files are not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Input:         getenv("LEDGERLINE_INPUT", ""),
		StatementsDir: getenv("LEDGERLINE_STATEMENTS_DIR", DefaultStatementsDir),
		OutputDir:     getenv("LEDGERLINE_OUTPUT_DIR", DefaultOutputDir),
		TempDir:       getenv("LEDGERLINE_TEMP_DIR", DefaultTempDir),
		GeminiModel:   getenv("LEDGERLINE_GEMINI_MODEL", DefaultGeminiModel),
		Timeout:       DefaultTimeout,
		BQProject:     getenv("LEDGERLINE_BQ_PROJECT", ""),
		BQDataset:     getenv("LEDGERLINE_BQ_DATASET", ""),
	}
	if cfg.Input == "" {
		cfg.Input = cfg.StatementsDir
	}
	cfg.Cardholders = SplitList(os.Getenv("LEDGERLINE_CARDHOLDERS"))

	if v := os.Getenv("LEDGERLINE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	return cfg
}

// SplitList parses a comma-separated list, trimming whitespace and dropping
// empty entries.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
