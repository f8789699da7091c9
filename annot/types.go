// Package annot defines annotation entry types, the loader link
// tables, sentinel errors and index options.
package annot

import (
	"errors"
	"fmt"

	"github.com/phenokit/phenokit/ontology"
)

// Sentinel errors for annotation indexing and queries.
var (
	// ErrEntryNotFound is returned when a gene or disease ID is absent
	// from the index.
	ErrEntryNotFound = errors.New("annot: annotation entry not found")

	// ErrUnknownCategory is returned for category names other than
	// "gene", "omim" or "orpha".
	ErrUnknownCategory = errors.New("annot: unknown annotation category")

	// ErrDanglingLink is returned by NewIndex when a link table row
	// references an unknown term or entry.
	ErrDanglingLink = errors.New("annot: link references unknown term or entry")

	// ErrDuplicateEntry is returned by NewIndex when an entry ID
	// appears twice within one category.
	ErrDuplicateEntry = errors.New("annot: duplicate annotation entry")
)

// Category selects one annotation namespace.
type Category int

const (
	// CategoryGene selects gene annotations.
	CategoryGene Category = iota
	// CategoryOmim selects OMIM disease annotations.
	CategoryOmim
	// CategoryOrpha selects Orphanet disease annotations.
	CategoryOrpha

	numCategories = 3
)

// String returns the canonical lowercase category name.
func (c Category) String() string {
	switch c {
	case CategoryGene:
		return "gene"
	case CategoryOmim:
		return "omim"
	case CategoryOrpha:
		return "orpha"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// ParseCategory converts "gene", "omim" or "orpha" into a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "gene":
		return CategoryGene, nil
	case "omim":
		return CategoryOmim, nil
	case "orpha":
		return CategoryOrpha, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// Entry is one annotation entry: a gene or disease identified by its
// external numeric ID within its category.
type Entry struct {
	ID   uint32
	Name string // gene symbol or disease name
}

// Link associates one term with one entry of a category's table.
type Link struct {
	Term  ontology.TermID
	Entry uint32
}

// Tables is the loader hand-off: the entry lists and the raw direct
// term-entry link tables per category.
type Tables struct {
	Genes         []Entry
	OmimDiseases  []Entry
	OrphaDiseases []Entry

	GeneLinks  []Link
	OmimLinks  []Link
	OrphaLinks []Link
}

func (t Tables) entries(c Category) []Entry {
	switch c {
	case CategoryGene:
		return t.Genes
	case CategoryOmim:
		return t.OmimDiseases
	default:
		return t.OrphaDiseases
	}
}

func (t Tables) links(c Category) []Link {
	switch c {
	case CategoryGene:
		return t.GeneLinks
	case CategoryOmim:
		return t.OmimLinks
	default:
		return t.OrphaLinks
	}
}

// Option configures NewIndex via functional arguments.
type Option func(*indexOptions)

type indexOptions struct {
	transitive bool
}

func defaultIndexOptions() indexOptions {
	return indexOptions{transitive: true}
}

// WithTransitive controls whether an entry's reverse phenotype profile
// propagates from each directly-linked term to all of its ancestors.
// The default is true; disabling it restricts profiles to the directly
// linked terms. Per-term entry sets always inherit upward from
// descendants regardless of this setting.
func WithTransitive(enabled bool) Option {
	return func(o *indexOptions) { o.transitive = enabled }
}
