package ic

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/phenokit/phenokit/annot"
	"github.com/phenokit/phenokit/hposet"
	"github.com/phenokit/phenokit/ontology"
)

// Index holds the precomputed information-content value of every term
// per annotation category. Like every other derived structure it is
// part of the immutable post-load snapshot.
type Index struct {
	ont    *ontology.Ontology
	values map[annot.Category]map[ontology.TermID]float64
}

// New computes all information-content values eagerly from the
// annotation index population counts.
func New(ont *ontology.Ontology, ax *annot.Index) *Index {
	ix := &Index{
		ont:    ont,
		values: make(map[annot.Category]map[ontology.TermID]float64, 3),
	}
	for _, c := range []annot.Category{annot.CategoryGene, annot.CategoryOmim, annot.CategoryOrpha} {
		ix.values[c] = computeCategory(ont, ax, c)
	}
	return ix
}

// computeCategory scores one category. A zero total population yields
// all-zero values; a zero per-term count yields 0 for that term.
func computeCategory(ont *ontology.Ontology, ax *annot.Index, c annot.Category) map[ontology.TermID]float64 {
	population := ax.Population(c)
	out := make(map[ontology.TermID]float64, ont.Len())
	if population == 0 {
		return out
	}
	for _, term := range ont.Terms() {
		count := ax.LinkedCount(c, term.ID)
		if count == 0 {
			continue
		}
		out[term.ID] = -math.Log(float64(count) / float64(population))
	}
	return out
}

// IC returns the information content of a term in the category.
// Terms without annotations (and all terms of an unpopulated category)
// score 0. Unknown terms fail with ontology.ErrTermNotFound.
func (ix *Index) IC(c annot.Category, term ontology.TermID) (float64, error) {
	if _, err := ix.ont.Term(term); err != nil {
		return 0, err
	}
	return ix.values[c][term], nil
}

// Value returns the information content without existence checking.
// Callers holding term IDs that already passed validation (set members,
// closure entries) use it on hot paths.
func (ix *Index) Value(c annot.Category, term ontology.TermID) float64 {
	return ix.values[c][term]
}

// Summary aggregates the information content of a set's members.
type Summary struct {
	Mean  float64
	Max   float64
	Total float64
	All   []float64
}

// SetSummary computes the per-member information-content values of a
// set plus their mean, maximum and total. A nil or empty set yields a
// zero Summary.
func (ix *Index) SetSummary(c annot.Category, s *hposet.Set) (Summary, error) {
	if s == nil || s.Len() == 0 {
		return Summary{}, nil
	}
	ids := s.IDs()
	all := make([]float64, len(ids))
	for i, id := range ids {
		v, err := ix.IC(c, id)
		if err != nil {
			return Summary{}, err
		}
		all[i] = v
	}
	return Summary{
		Mean:  stat.Mean(all, nil),
		Max:   floats.Max(all),
		Total: floats.Sum(all),
		All:   all,
	}, nil
}
