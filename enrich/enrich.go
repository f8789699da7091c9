package enrich

import (
	"errors"
	"fmt"
	"sort"

	"github.com/phenokit/phenokit/annot"
	"github.com/phenokit/phenokit/hposet"
	"github.com/phenokit/phenokit/ontology"
)

// ErrNilIndex is returned by NewModel when the ontology or annotation
// index is missing.
var ErrNilIndex = errors.New("enrich: nil ontology or annotation index")

// Result is one enrichment entry of a query: the candidate gene or
// disease with its significance and effect size.
type Result struct {
	// PValue is the upper-tail hypergeometric probability, in [0, 1].
	PValue float64
	// Fold is the observed-over-expected enrichment ratio.
	Fold float64
	// Count is the number of observed terms linked to the entry.
	Count int
	// Entry is the enriched gene or disease.
	Entry annot.Entry
	// Category names the annotation namespace of Entry.
	Category annot.Category
}

// Model computes enrichment for one annotation category against the
// shared read-only indices. Safe for concurrent use.
type Model struct {
	ont *ontology.Ontology
	ax  *annot.Index
	cat annot.Category
}

// NewModel validates the category and returns a ready model.
func NewModel(ont *ontology.Ontology, ax *annot.Index, cat annot.Category) (*Model, error) {
	if ont == nil || ax == nil {
		return nil, ErrNilIndex
	}
	if _, err := annot.ParseCategory(cat.String()); err != nil {
		return nil, fmt.Errorf("%w: %d", annot.ErrUnknownCategory, int(cat))
	}
	return &Model{ont: ont, ax: ax, cat: cat}, nil
}

// Enrichment scores every candidate entry sharing at least one term
// with the observed set, ordered most significant first. A nil, empty
// or unannotated observed set yields an empty result slice.
func (m *Model) Enrichment(observed *hposet.Set) ([]Result, error) {
	population := m.ax.Population(m.cat)
	if population == 0 || observed == nil || observed.Len() == 0 {
		return nil, nil
	}

	// Sample size counts only observed terms that carry annotations;
	// a term with no linked entries cannot contribute a success.
	sample := 0
	perEntry := make(map[uint32]int)
	for _, term := range observed.IDs() {
		entries, err := m.ax.EntryIDsOf(m.cat, term)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}
		sample++
		for _, e := range entries {
			perEntry[e]++
		}
	}
	if sample == 0 {
		return nil, nil
	}

	successes := len(perEntry)
	results := make([]Result, 0, len(perEntry))
	for id, count := range perEntry {
		entry, err := m.ax.Entry(m.cat, id)
		if err != nil {
			return nil, err
		}
		observedRate := float64(count) / float64(sample)
		backgroundRate := float64(successes) / float64(population)
		results = append(results, Result{
			PValue:   upperTail(population, successes, sample, count),
			Fold:     observedRate / backgroundRate,
			Count:    count,
			Entry:    entry,
			Category: m.cat,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.PValue != b.PValue {
			return a.PValue < b.PValue
		}
		if a.Fold != b.Fold {
			return a.Fold > b.Fold
		}
		return a.Entry.ID < b.Entry.ID
	})
	return results, nil
}
