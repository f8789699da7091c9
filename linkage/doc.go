// Package linkage agglomeratively clusters phenotype term sets by
// semantic similarity.
//
// Starting from one singleton cluster per input set, the closest pair
// of clusters is merged repeatedly until a single cluster remains.
// Inter-cluster distance is 1 − set-similarity and is updated after
// each merge according to the chosen method:
//
//   - Single   — minimum of the merged members' distances
//   - Complete — maximum of the merged members' distances
//   - Average  — size-weighted mean (UPGMA)
//   - Union    — the merged cluster is the union of its term sets and
//     its distances are recomputed from scratch
//
// The result is the familiar stepwise merge table: row i records the
// two cluster indices joined at step i, their distance, and the size
// of the new cluster. Original sets keep indices 0..n-1; the cluster
// born at step i gets index n+i.
//
// ⚙️ Usage:
//
//	rows, err := linkage.Cluster(ctx, sim, similarity.BMA, linkage.Average, sets)
//	for _, r := range rows {
//	  fmt.Printf("merge %d+%d at %.3f (size %d)\n", r.A, r.B, r.Distance, r.Size)
//	}
package linkage
