package batch

import (
	"context"
	"sync"

	"github.com/phenokit/phenokit/enrich"
	"github.com/phenokit/phenokit/hposet"
	"github.com/phenokit/phenokit/similarity"
)

// TermSimilarity evaluates sim.Calc for every pair, in parallel.
// The returned slice has len(pairs) slots; slot i holds the score or
// the per-pair error for pairs[i].
func TermSimilarity(ctx context.Context, sim *similarity.Sim, pairs []TermPair, opts ...Option) ([]Score, error) {
	if sim == nil {
		return nil, ErrNilEngine
	}
	o, err := buildOptions(opts...)
	if err != nil {
		return nil, err
	}

	out := make([]Score, len(pairs))
	run(ctx, len(pairs), o.Workers,
		func(i int) {
			v, err := sim.Calc(pairs[i].A, pairs[i].B)
			out[i] = Score{Value: v, Err: err}
		},
		func(i int, err error) {
			out[i] = Score{Err: err}
		})
	return out, nil
}

// SetSimilarity evaluates sim.CalcSet for every pair of term sets, in
// parallel. Slot i of the result corresponds to pairs[i].
func SetSimilarity(ctx context.Context, sim *similarity.Sim, combiner similarity.Combiner, pairs []SetPair, opts ...Option) ([]Score, error) {
	if sim == nil {
		return nil, ErrNilEngine
	}
	o, err := buildOptions(opts...)
	if err != nil {
		return nil, err
	}

	out := make([]Score, len(pairs))
	run(ctx, len(pairs), o.Workers,
		func(i int) {
			v, err := sim.CalcSet(pairs[i].A, pairs[i].B, combiner)
			out[i] = Score{Value: v, Err: err}
		},
		func(i int, err error) {
			out[i] = Score{Err: err}
		})
	return out, nil
}

// Enrichment runs model.Enrichment for every observed set, in
// parallel. Slot i of the result corresponds to sets[i].
func Enrichment(ctx context.Context, model *enrich.Model, sets []*hposet.Set, opts ...Option) ([]SetEnrichment, error) {
	if model == nil {
		return nil, ErrNilEngine
	}
	o, err := buildOptions(opts...)
	if err != nil {
		return nil, err
	}

	out := make([]SetEnrichment, len(sets))
	run(ctx, len(sets), o.Workers,
		func(i int) {
			res, err := model.Enrichment(sets[i])
			out[i] = SetEnrichment{Results: res, Err: err}
		},
		func(i int, err error) {
			out[i] = SetEnrichment{Err: err}
		})
	return out, nil
}

// buildOptions folds the functional options over the defaults and
// surfaces any violation recorded during parsing.
func buildOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// run partitions [0, n) into contiguous chunks, one per worker, and
// applies work to every index. Each worker checks ctx before every
// item; once the context is done, cancel records ctx.Err() into the
// remaining slots of that worker's chunk. run returns after all
// workers have drained their chunks.
func run(ctx context.Context, n, workers int, work func(i int), cancel func(i int, err error)) {
	if n == 0 {
		return
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := min(lo+chunk, n)

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					cancel(i, err)
					continue
				}
				work(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
