// Package batch fans independent similarity and enrichment
// computations out over a fixed pool of workers.
//
// 🚀 Guarantees:
//
//   - result[i] always corresponds to input[i] — workers write into a
//     pre-sized buffer indexed by original position, never append in
//     completion order, so 1 worker and N workers produce identical
//     output.
//   - one bad item (unknown term ID, say) records its error in its own
//     slot; the rest of the batch completes normally.
//   - the shared ontology, annotation and information-content
//     snapshots are read-only, so workers need no synchronization
//     beyond the final join.
//
// The input sequence is statically partitioned into contiguous chunks,
// one per worker; per-item cost is near-uniform, so no work stealing
// is needed. Worker count defaults to the available CPU parallelism
// and is overridable via WithWorkers.
//
// ⚙️ Usage:
//
//	scores, err := batch.TermSimilarity(ctx, sim, pairs, batch.WithWorkers(8))
//	for i, sc := range scores {
//	  if sc.Err != nil { ... }    // this item only
//	}
package batch
