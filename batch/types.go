// Package batch defines the work-item types, options and sentinel
// errors of the parallel evaluation layer.
package batch

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/phenokit/phenokit/enrich"
	"github.com/phenokit/phenokit/hposet"
	"github.com/phenokit/phenokit/ontology"
)

// Sentinel errors for batch configuration.
var (
	// ErrOptionViolation is returned when an invalid Option is
	// supplied.
	ErrOptionViolation = errors.New("batch: invalid option supplied")

	// ErrNilEngine is returned when the similarity or enrichment
	// engine argument is nil.
	ErrNilEngine = errors.New("batch: nil engine")
)

// TermPair is one term-similarity work item.
type TermPair struct {
	A, B ontology.TermID
}

// SetPair is one set-similarity work item. The sets must not be
// mutated by the caller while the batch is in flight; Set is immutable
// after construction, so this only concerns callers building their own
// aliasing.
type SetPair struct {
	A, B *hposet.Set
}

// Score is one similarity result slot: either a value or the per-item
// error, never both.
type Score struct {
	Value float64
	Err   error
}

// SetEnrichment is one enrichment result slot.
type SetEnrichment struct {
	Results []enrich.Result
	Err     error
}

// Option configures batch execution via functional arguments.
type Option func(*Options)

// Options holds the batch execution parameters.
type Options struct {
	// Workers is the fixed pool size. Zero selects the available CPU
	// parallelism.
	Workers int

	err error // recorded during option parsing
}

// DefaultOptions returns Options sized to runtime.NumCPU().
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// WithWorkers sets the worker pool size.
//
//	n > 0:  use exactly n workers
//	n == 0: explicit default (CPU parallelism)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.NumCPU()
		default:
			o.Workers = n
		}
	}
}
