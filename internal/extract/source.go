package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/logger"
	"github.com/ledgerline/ledgerline/internal/table"
)

// ErrBackendUnavailable marks a strategy whose underlying dependency is
// missing on this host. The runner downgrades it to a warning and moves on.
var ErrBackendUnavailable = errors.New("extraction backend unavailable")

// Source is one independent table extraction strategy.
type Source interface {
	Name() string
	Extract(ctx context.Context, doc *Document) ([]table.Table, error)
}

// Runner executes strategies in a fixed order against one document,
// isolating failures per strategy and concatenating whatever candidates
// survive. An empty result means "no tables found" and is not an error.
type Runner struct {
	sources []Source
}

// NewRunner builds a runner over the given strategies, tried in order.
func NewRunner(sources ...Source) *Runner {
	return &Runner{sources: sources}
}

// DefaultSources is the standard strategy order: primary backend lattice
// then stream, the optional external backend in both flavors, then the
// page-by-page row fallback.
func DefaultSources() []Source {
	return []Source{
		&latticeSource{},
		&streamSource{},
		&tabulaSource{lattice: true},
		&tabulaSource{lattice: false},
		&rowfallSource{},
	}
}

// ExtractTables opens the PDF at path and runs every strategy against it.
// Only the document open can fail; strategy errors are logged and skipped.
func (r *Runner) ExtractTables(ctx context.Context, path string) ([]table.Table, error) {
	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()
	return r.Run(ctx, doc), nil
}

// Run executes the strategies against an already-open document.
func (r *Runner) Run(ctx context.Context, doc *Document) []table.Table {
	log := logger.FromContext(ctx)
	var out []table.Table
	for _, src := range r.sources {
		tables, err := runSource(ctx, src, doc)
		switch {
		case errors.Is(err, ErrBackendUnavailable):
			log.Warn().Str("strategy", src.Name()).Msg("backend unavailable, skipping strategy")
		case err != nil:
			log.Warn().Err(err).Str("strategy", src.Name()).Msg("extraction strategy failed")
		default:
			out = append(out, tables...)
		}
	}
	return out
}

// runSource shields the runner from a misbehaving strategy; PDF parsing
// panics on malformed content streams surface as errors here.
func runSource(ctx context.Context, src Source, doc *Document) (tables []table.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			tables = nil
			err = fmt.Errorf("strategy %s panicked: %v", src.Name(), r)
		}
	}()
	return src.Extract(ctx, doc)
}
