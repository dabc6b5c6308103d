// Package pipeline runs the statement extraction flow as a sequence of
// steps sharing one state: scan the input for PDFs, extract and clean
// candidate tables from each, combine them into one ledger, sanitize,
// group by cardholder, and write the combined outputs.
package pipeline

import (
	"context"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/table"
)

// Step is a single stage of the extraction pipeline.
type Step interface {
	Name() string
	Execute(ctx context.Context, state *State) error
}

// State holds the shared state across all pipeline steps.
type State struct {
	RunID string

	// Input is either a local directory or a gs:// prefix.
	Input         string
	StatementsDir string
	OutputDir     string

	Documents []string
	Cleaned   []table.Table
	Combined  table.Table
	Grouped   map[string][]map[string]any

	// Empty is set when no document yielded a usable table; later steps
	// become no-ops and no combined outputs are written.
	Empty bool

	DocsProcessed int
	RowsDropped   int
	RowsKept      int
}

// Pipeline executes a sequence of steps in order.
type Pipeline struct {
	steps []Step
}

// New creates a pipeline with the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Execute runs all steps sequentially, stopping at the first failure.
func (p *Pipeline) Execute(ctx context.Context, state *State) error {
	for _, step := range p.steps {
		if err := step.Execute(ctx, state); err != nil {
			return fmt.Errorf("pipeline step %s: %w", step.Name(), err)
		}
	}
	return nil
}
