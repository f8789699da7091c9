// Package ontology defines the term arena types, build input records,
// sentinel errors and build options.
package ontology

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for ontology construction and queries.
var (
	// ErrTermNotFound is returned when a queried term ID or name is
	// absent from the loaded ontology.
	ErrTermNotFound = errors.New("ontology: term not found")

	// ErrInvalidTermID is returned when a canonical term ID string
	// cannot be parsed.
	ErrInvalidTermID = errors.New("ontology: invalid term id")

	// ErrNoRoot is returned by Build when no term qualifies as root.
	ErrNoRoot = errors.New("ontology: no root term")

	// ErrMultipleRoots is returned by Build when more than one
	// non-obsolete term has no parents.
	ErrMultipleRoots = errors.New("ontology: multiple root terms")

	// ErrCycle is returned by Build when the is-a relation contains a
	// cycle.
	ErrCycle = errors.New("ontology: cycle in is-a relation")

	// ErrDanglingParent is returned by Build when a term references an
	// unknown parent ID.
	ErrDanglingParent = errors.New("ontology: dangling parent reference")

	// ErrDuplicateTerm is returned by Build when the same term ID
	// appears twice in the source records.
	ErrDuplicateTerm = errors.New("ontology: duplicate term id")

	// ErrUnreachableTerm is returned by Build when a non-obsolete term
	// never reaches the root. Obsolete terms are routinely unlinked and
	// are exempt.
	ErrUnreachableTerm = errors.New("ontology: term unreachable from root")

	// ErrNoPath is returned when two terms share no common ancestor.
	// A validated single-root graph cannot trigger it; it guards
	// against querying obsolete, unlinked terms.
	ErrNoPath = errors.New("ontology: no path between terms")
)

// TermID is the stable numeric identifier of an HPO term.
// The canonical string form is "HP:" followed by the zero-padded
// 7-digit number, e.g. TermID(118).String() == "HP:0000118".
type TermID uint32

// String returns the canonical "HP:0000123" representation.
func (id TermID) String() string {
	return fmt.Sprintf("HP:%07d", uint32(id))
}

// ParseTermID converts a canonical "HP:0000123" string into a TermID.
// Returns ErrInvalidTermID when the prefix or number is malformed.
func ParseTermID(s string) (TermID, error) {
	num, ok := strings.CutPrefix(s, "HP:")
	if !ok {
		return 0, fmt.Errorf("%w: %q lacks HP: prefix", ErrInvalidTermID, s)
	}
	v, err := strconv.ParseUint(num, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTermID, s)
	}
	return TermID(v), nil
}

// Term is one node of the ontology DAG. Terms are owned exclusively by
// the Ontology arena; other components reference them by ID.
type Term struct {
	// ID is the stable numeric identifier.
	ID TermID

	// Name is the display name, e.g. "Scoliosis".
	Name string

	// Obsolete marks terms that should no longer be used.
	Obsolete bool

	// ReplacedBy names the replacement term for an obsolete term.
	// Zero means no replacement is known.
	ReplacedBy TermID

	// Modifier marks clinical-modifier terms rather than phenotypes.
	Modifier bool

	idx int // dense arena index
}

// TermRecord is one term as delivered by the external loader.
type TermRecord struct {
	ID         TermID
	Name       string
	Obsolete   bool
	ReplacedBy TermID
	Modifier   bool
	Parents    []TermID
}

// Source is the full loader hand-off: term records plus the declared
// ontology version. Annotation link tables travel separately to the
// annot package.
type Source struct {
	Version string
	Terms   []TermRecord
}

// Option configures Build via functional arguments.
type Option func(*buildOptions)

type buildOptions struct {
	root TermID // explicit root override; 0 means autodetect
}

func defaultBuildOptions() buildOptions {
	return buildOptions{}
}

// WithRoot pins the root term instead of autodetecting the single
// parentless term. Build still verifies that every non-obsolete term
// reaches it, failing with ErrUnreachableTerm otherwise.
func WithRoot(id TermID) Option {
	return func(o *buildOptions) { o.root = id }
}
