package linkage

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/phenokit/phenokit/batch"
	"github.com/phenokit/phenokit/hposet"
	"github.com/phenokit/phenokit/similarity"
)

// cluster is one active cluster during agglomeration. set is carried
// only by the Union method, which rescores merged clusters from their
// combined terms.
type cluster struct {
	id   int
	size int
	set  *hposet.Set
}

// Cluster merges the input sets bottom-up into a full dendrogram,
// returning one Row per merge (n-1 rows for n sets). Fewer than two
// sets cluster trivially and yield no rows. The initial pairwise
// distances are evaluated through the batch worker pool; opts tune it.
func Cluster(ctx context.Context, sim *similarity.Sim, combiner similarity.Combiner, method Method, sets []*hposet.Set, opts ...batch.Option) ([]Row, error) {
	if sim == nil {
		return nil, ErrNilEngine
	}
	if method >= numMethods {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
	n := len(sets)
	if n < 2 {
		return nil, nil
	}

	dist, err := distanceMatrix(ctx, sim, combiner, sets, opts...)
	if err != nil {
		return nil, err
	}

	clusters := make([]cluster, n)
	alive := make([]bool, n)
	for i, s := range sets {
		clusters[i] = cluster{id: i, size: 1, set: s}
		alive[i] = true
	}

	rows := make([]Row, 0, n-1)
	for step := 0; step < n-1; step++ {
		bi, bj := closestPair(dist, alive)
		ci, cj := clusters[bi], clusters[bj]

		merged := cluster{id: n + step, size: ci.size + cj.size}
		if method == Union {
			merged.set = ci.set.Union(cj.set)
		}
		rows = append(rows, Row{
			A:        min(ci.id, cj.id),
			B:        max(ci.id, cj.id),
			Distance: dist.At(bi, bj),
			Size:     merged.size,
		})

		// The merged cluster takes over slot bi; slot bj retires.
		alive[bj] = false
		for k := 0; k < n; k++ {
			if !alive[k] || k == bi {
				continue
			}
			var d float64
			switch method {
			case Single:
				d = math.Min(dist.At(bi, k), dist.At(bj, k))
			case Complete:
				d = math.Max(dist.At(bi, k), dist.At(bj, k))
			case Average:
				d = (float64(ci.size)*dist.At(bi, k) + float64(cj.size)*dist.At(bj, k)) /
					float64(merged.size)
			case Union:
				s, err := sim.CalcSet(merged.set, clusters[k].set, combiner)
				if err != nil {
					return nil, fmt.Errorf("linkage: rescoring merged cluster %d: %w", merged.id, err)
				}
				d = 1 - s
			}
			dist.Set(bi, k, d)
			dist.Set(k, bi, d)
		}
		clusters[bi] = merged
	}
	return rows, nil
}

// distanceMatrix scores every unordered pair of sets in parallel and
// returns the symmetric matrix of 1 − similarity.
func distanceMatrix(ctx context.Context, sim *similarity.Sim, combiner similarity.Combiner, sets []*hposet.Set, opts ...batch.Option) (*mat.Dense, error) {
	n := len(sets)
	pairs := make([]batch.SetPair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, batch.SetPair{A: sets[i], B: sets[j]})
		}
	}

	scores, err := batch.SetSimilarity(ctx, sim, combiner, pairs, opts...)
	if err != nil {
		return nil, err
	}

	dist := mat.NewDense(n, n, nil)
	p := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sc := scores[p]
			p++
			if sc.Err != nil {
				return nil, fmt.Errorf("linkage: distance of sets %d and %d: %w", i, j, sc.Err)
			}
			dist.Set(i, j, 1-sc.Value)
			dist.Set(j, i, 1-sc.Value)
		}
	}
	return dist, nil
}

// closestPair scans the live portion of the matrix for the minimal
// off-diagonal entry.
func closestPair(dist *mat.Dense, alive []bool) (int, int) {
	bi, bj := -1, -1
	best := math.Inf(1)
	for i := range alive {
		if !alive[i] {
			continue
		}
		for j := i + 1; j < len(alive); j++ {
			if !alive[j] {
				continue
			}
			if d := dist.At(i, j); d < best {
				best, bi, bj = d, i, j
			}
		}
	}
	return bi, bj
}
