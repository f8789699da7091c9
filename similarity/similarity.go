package similarity

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/phenokit/phenokit/annot"
	"github.com/phenokit/phenokit/hposet"
	"github.com/phenokit/phenokit/ic"
	"github.com/phenokit/phenokit/ontology"
)

// Sim computes term-pair and set-set similarity for one annotation
// category and method. It only reads from the shared immutable
// ontology and information-content snapshot, so a single Sim may be
// used from many goroutines at once.
type Sim struct {
	ont    *ontology.Ontology
	icx    *ic.Index
	cat    annot.Category
	method Method
}

// New validates the method and returns a ready-to-use Sim.
func New(ont *ontology.Ontology, icx *ic.Index, cat annot.Category, method Method) (*Sim, error) {
	if method < Resnik || method > Dist {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
	return &Sim{ont: ont, icx: icx, cat: cat, method: method}, nil
}

// Calc scores one term pair. All methods are symmetric in their
// arguments. Unknown terms fail with ontology.ErrTermNotFound.
func (s *Sim) Calc(a, b ontology.TermID) (float64, error) {
	switch s.method {
	case Dist:
		return s.distance(a, b)
	case Graphic:
		return s.graphic(a, b)
	default:
		return s.icBased(a, b)
	}
}

// icBased covers every method defined on IC(a), IC(b) and IC(LCA).
func (s *Sim) icBased(a, b ontology.TermID) (float64, error) {
	lcaIC, err := s.lcaIC(a, b)
	if err != nil {
		return 0, err
	}
	icA := s.icx.Value(s.cat, a)
	icB := s.icx.Value(s.cat, b)

	lin := 0.0
	if icA+icB > 0 {
		lin = 2 * lcaIC / (icA + icB)
	}

	switch s.method {
	case Resnik:
		return lcaIC, nil
	case Lin:
		return lin, nil
	case JC, JC2:
		return 1 / (1 + icA + icB - 2*lcaIC), nil
	case Rel:
		return lin * (1 - math.Exp(-lcaIC)), nil
	case InfoCoef:
		return lin * (lcaIC / (1 + lcaIC)), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownMethod, s.method)
	}
}

// lcaIC resolves the lowest-common-ancestor candidates and breaks
// depth ties by the highest information content: the most specific
// shared concept is the best similarity witness.
func (s *Sim) lcaIC(a, b ontology.TermID) (float64, error) {
	cands, err := s.ont.LCA(a, b)
	if err != nil {
		if errors.Is(err, ontology.ErrNoPath) {
			return 0, nil
		}
		return 0, err
	}
	best := 0.0
	for _, id := range cands {
		if v := s.icx.Value(s.cat, id); v > best {
			best = v
		}
	}
	return best, nil
}

// graphic scores the shared inclusive-ancestor IC mass against the IC
// mass of the ancestor union, comparing fairly across ontology regions
// of different density.
func (s *Sim) graphic(a, b ontology.TermID) (float64, error) {
	ancA, err := s.inclusiveAncestors(a)
	if err != nil {
		return 0, err
	}
	ancB, err := s.inclusiveAncestors(b)
	if err != nil {
		return 0, err
	}

	var common, union float64
	for id := range ancA {
		union += s.icx.Value(s.cat, id)
		if _, shared := ancB[id]; shared {
			common += s.icx.Value(s.cat, id)
		}
	}
	for id := range ancB {
		if _, shared := ancA[id]; !shared {
			union += s.icx.Value(s.cat, id)
		}
	}
	if union == 0 {
		return 0, nil
	}
	return common / union, nil
}

func (s *Sim) inclusiveAncestors(id ontology.TermID) (map[ontology.TermID]struct{}, error) {
	anc, err := s.ont.Ancestors(id)
	if err != nil {
		return nil, err
	}
	set := make(map[ontology.TermID]struct{}, len(anc)+1)
	set[id] = struct{}{}
	for _, a := range anc {
		set[a] = struct{}{}
	}
	return set, nil
}

// distance is the IC-free fallback: 1/(1+hops) through the nearest
// common ancestor. Terms without a shared ancestor score 0.
func (s *Sim) distance(a, b ontology.TermID) (float64, error) {
	hops, err := s.ont.PathLength(a, b)
	if err != nil {
		if errors.Is(err, ontology.ErrNoPath) {
			return 0, nil
		}
		return 0, err
	}
	return 1 / float64(1+hops), nil
}

// CalcSet scores two phenotype profiles: the full |A|x|B| pairwise
// score matrix is reduced by the combiner. A nil or empty set on
// either side scores 0.
func (s *Sim) CalcSet(a, b *hposet.Set, comb Combiner) (float64, error) {
	if comb < FunSimAvg || comb > BMA {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCombiner, comb)
	}
	if a == nil || b == nil {
		return 0, nil
	}
	idsA, idsB := a.IDs(), b.IDs()
	if len(idsA) == 0 || len(idsB) == 0 {
		return 0, nil
	}

	scores := mat.NewDense(len(idsA), len(idsB), nil)
	for i, ta := range idsA {
		for j, tb := range idsB {
			v, err := s.Calc(ta, tb)
			if err != nil {
				return 0, err
			}
			scores.Set(i, j, v)
		}
	}

	rowBest := make([]float64, len(idsA))
	for i := range idsA {
		rowBest[i] = floats.Max(scores.RawRowView(i))
	}
	colBest := make([]float64, len(idsB))
	col := make([]float64, len(idsA))
	for j := range idsB {
		mat.Col(col, j, scores)
		colBest[j] = floats.Max(col)
	}

	forward := stat.Mean(rowBest, nil)
	backward := stat.Mean(colBest, nil)

	switch comb {
	case FunSimAvg:
		return (forward + backward) / 2, nil
	case FunSimMax:
		return math.Max(forward, backward), nil
	default: // BMA
		return forward, nil
	}
}
