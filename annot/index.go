package annot

import (
	"fmt"
	"sort"

	"github.com/phenokit/phenokit/hposet"
	"github.com/phenokit/phenokit/ontology"
)

// Index holds, per category, the inherited per-term entry sets and the
// reverse entry-to-terms profiles. Built once from the raw link
// tables; immutable and lock-free afterwards.
type Index struct {
	ont *ontology.Ontology

	entries [numCategories]map[uint32]Entry
	ordered [numCategories][]Entry // sorted by ID, for stable iteration

	// termEntries[c][term] = direct links plus everything inherited
	// from descendant terms; sorted entry IDs.
	termEntries [numCategories]map[ontology.TermID][]uint32

	// profiles[c][entry] = sorted term IDs of the entry's phenotype
	// profile (direct links, plus their ancestors when transitive).
	profiles [numCategories]map[uint32][]ontology.TermID
}

// NewIndex validates the link tables against the ontology and builds
// all derived maps. Fails with ErrDuplicateEntry or ErrDanglingLink on
// malformed tables.
func NewIndex(ont *ontology.Ontology, tables Tables, opts ...Option) (*Index, error) {
	o := defaultIndexOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ix := &Index{ont: ont}
	for c := Category(0); c < numCategories; c++ {
		if err := ix.loadCategory(c, tables, o.transitive); err != nil {
			return nil, err
		}
	}
	return ix, nil
}

func (ix *Index) loadCategory(c Category, tables Tables, transitive bool) error {
	entries := tables.entries(c)
	links := tables.links(c)

	ix.entries[c] = make(map[uint32]Entry, len(entries))
	ix.ordered[c] = make([]Entry, 0, len(entries))
	for _, e := range entries {
		if _, dup := ix.entries[c][e.ID]; dup {
			return fmt.Errorf("%w: %s %d", ErrDuplicateEntry, c, e.ID)
		}
		ix.entries[c][e.ID] = e
		ix.ordered[c] = append(ix.ordered[c], e)
	}
	sort.Slice(ix.ordered[c], func(i, j int) bool { return ix.ordered[c][i].ID < ix.ordered[c][j].ID })

	direct := make(map[ontology.TermID]map[uint32]struct{})
	profile := make(map[uint32]map[ontology.TermID]struct{})
	for _, l := range links {
		if _, ok := ix.entries[c][l.Entry]; !ok {
			return fmt.Errorf("%w: %s entry %d", ErrDanglingLink, c, l.Entry)
		}
		if _, err := ix.ont.Term(l.Term); err != nil {
			return fmt.Errorf("%w: term %s", ErrDanglingLink, l.Term)
		}
		if direct[l.Term] == nil {
			direct[l.Term] = make(map[uint32]struct{})
		}
		direct[l.Term][l.Entry] = struct{}{}
		if profile[l.Entry] == nil {
			profile[l.Entry] = make(map[ontology.TermID]struct{})
		}
		profile[l.Entry][l.Term] = struct{}{}
	}

	ix.termEntries[c] = ix.inheritUpward(direct)
	p, err := ix.buildProfiles(profile, transitive)
	if err != nil {
		return err
	}
	ix.profiles[c] = p
	return nil
}

// inheritUpward materializes per-term entry sets bottom-up: iterating
// the topological order in reverse guarantees every child set is final
// before its parents union it in.
func (ix *Index) inheritUpward(direct map[ontology.TermID]map[uint32]struct{}) map[ontology.TermID][]uint32 {
	order := ix.ont.TopologicalOrder()
	acc := make(map[ontology.TermID]map[uint32]struct{}, len(order))

	for k := len(order) - 1; k >= 0; k-- {
		id := order[k]
		set := make(map[uint32]struct{})
		for e := range direct[id] {
			set[e] = struct{}{}
		}
		children, _ := ix.ont.Children(id)
		for _, child := range children {
			for e := range acc[child] {
				set[e] = struct{}{}
			}
		}
		acc[id] = set
	}

	out := make(map[ontology.TermID][]uint32, len(acc))
	for id, set := range acc {
		if len(set) == 0 {
			continue
		}
		ids := make([]uint32, 0, len(set))
		for e := range set {
			ids = append(ids, e)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		out[id] = ids
	}
	return out
}

// buildProfiles finalizes the reverse maps, optionally propagating
// each linked term to its full ancestor closure.
func (ix *Index) buildProfiles(profile map[uint32]map[ontology.TermID]struct{}, transitive bool) (map[uint32][]ontology.TermID, error) {
	out := make(map[uint32][]ontology.TermID, len(profile))
	for entry, terms := range profile {
		set := make(map[ontology.TermID]struct{}, len(terms))
		for id := range terms {
			set[id] = struct{}{}
			if !transitive {
				continue
			}
			anc, err := ix.ont.Ancestors(id)
			if err != nil {
				return nil, err
			}
			for _, a := range anc {
				set[a] = struct{}{}
			}
		}
		ids := make([]ontology.TermID, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		out[entry] = ids
	}
	return out, nil
}

// EntryIDsOf returns the sorted IDs of every entry linked to the term,
// directly or through any descendant.
func (ix *Index) EntryIDsOf(c Category, term ontology.TermID) ([]uint32, error) {
	if c < 0 || c >= numCategories {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	if _, err := ix.ont.Term(term); err != nil {
		return nil, err
	}
	ids := ix.termEntries[c][term]
	out := make([]uint32, len(ids))
	copy(out, ids)
	return out, nil
}

// LinkedCount returns the number of entries linked to the term in the
// category, inherited links included. Unknown terms count zero rather
// than erroring; statistics layers treat missing annotation data as an
// expected condition.
func (ix *Index) LinkedCount(c Category, term ontology.TermID) int {
	return len(ix.termEntries[c][term])
}

// Population returns the number of distinct entries linked anywhere in
// the ontology: the root term's inherited entry count.
func (ix *Index) Population(c Category) int {
	return len(ix.termEntries[c][ix.ont.Root().ID])
}

// GenesOf returns the genes linked to the term, inherited included.
func (ix *Index) GenesOf(term ontology.TermID) ([]Entry, error) {
	return ix.entriesOf(CategoryGene, term)
}

// OmimDiseasesOf returns the OMIM diseases linked to the term.
func (ix *Index) OmimDiseasesOf(term ontology.TermID) ([]Entry, error) {
	return ix.entriesOf(CategoryOmim, term)
}

// OrphaDiseasesOf returns the Orphanet diseases linked to the term.
func (ix *Index) OrphaDiseasesOf(term ontology.TermID) ([]Entry, error) {
	return ix.entriesOf(CategoryOrpha, term)
}

func (ix *Index) entriesOf(c Category, term ontology.TermID) ([]Entry, error) {
	ids, err := ix.EntryIDsOf(c, term)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(ids))
	for i, id := range ids {
		out[i] = ix.entries[c][id]
	}
	return out, nil
}

// Entry resolves one entry by category and ID.
func (ix *Index) Entry(c Category, id uint32) (Entry, error) {
	if c < 0 || c >= numCategories {
		return Entry{}, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	e, ok := ix.entries[c][id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s %d", ErrEntryNotFound, c, id)
	}
	return e, nil
}

// Entries returns all entries of the category, sorted by ID. The order
// is stable within one loaded instance.
func (ix *Index) Entries(c Category) []Entry {
	out := make([]Entry, len(ix.ordered[c]))
	copy(out, ix.ordered[c])
	return out
}

// GeneByName resolves a gene by its symbol.
func (ix *Index) GeneByName(symbol string) (Entry, error) {
	for _, e := range ix.ordered[CategoryGene] {
		if e.Name == symbol {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: gene %q", ErrEntryNotFound, symbol)
}

// TermsOf returns the entry's phenotype profile term IDs, sorted.
func (ix *Index) TermsOf(c Category, id uint32) ([]ontology.TermID, error) {
	if _, err := ix.Entry(c, id); err != nil {
		return nil, err
	}
	terms := ix.profiles[c][id]
	out := make([]ontology.TermID, len(terms))
	copy(out, terms)
	return out, nil
}

// HpoSetOf returns the entry's authoritative phenotype profile as a
// basic-normalized set: the most specific non-modifier terms linked to
// the entry. This is the set similarity and enrichment engines consume
// when comparing the entry against patient profiles.
func (ix *Index) HpoSetOf(c Category, id uint32) (*hposet.Set, error) {
	terms, err := ix.TermsOf(c, id)
	if err != nil {
		return nil, err
	}
	return hposet.NewBasic(ix.ont, terms...)
}
