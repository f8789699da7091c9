package hposet

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/phenokit/phenokit/ontology"
)

// Sentinel errors for set construction and parsing.
var (
	// ErrBadSerialization is returned by Parse for input that is not a
	// "+"-joined list of numeric term IDs.
	ErrBadSerialization = errors.New("hposet: malformed serialized set")

	// ErrReplacementCycle is returned when obsolete-term replacement
	// declarations form a loop.
	ErrReplacementCycle = errors.New("hposet: obsolete replacement cycle")
)

// Set is an order-irrelevant, duplicate-free collection of term IDs.
// Construction validates every member against the ontology; afterwards
// the set is immutable and safe to share across goroutines.
type Set struct {
	ids []ontology.TermID // sorted, unique
}

// NewRaw builds a set that keeps the input as given, except that
// obsolete terms with a declared replacement are swapped for it,
// following replacement chains to the first live term. Modifier terms
// and unreplaced obsolete terms stay in the set.
func NewRaw(ont *ontology.Ontology, ids ...ontology.TermID) (*Set, error) {
	return build(ont, ids, normalizeRaw)
}

// NewPhenotype builds a set without modifier terms and with obsolete
// terms resolved: replacement chains are followed to the first live
// term, and members that stay obsolete (or resolve to a modifier) are
// dropped. Ancestor/descendant redundancy is kept.
func NewPhenotype(ont *ontology.Ontology, ids ...ontology.TermID) (*Set, error) {
	return build(ont, ids, normalizePhenotype)
}

// NewBasic builds a phenotype-normalized set and additionally prunes
// every term that is an ancestor of another member, so only the most
// specific terms remain. NewBasic is idempotent: re-normalizing a
// basic set returns an equal set.
func NewBasic(ont *ontology.Ontology, ids ...ontology.TermID) (*Set, error) {
	s, err := build(ont, ids, normalizePhenotype)
	if err != nil {
		return nil, err
	}
	return s.ChildNodes(ont)
}

// A normalizePolicy decides what a replacement-resolved term
// contributes to the set, if anything.
type normalizePolicy func(t *ontology.Term) (ontology.TermID, bool)

// normalizeRaw keeps whatever the replacement chase produced, modifier
// and unreplaced obsolete terms included.
func normalizeRaw(t *ontology.Term) (ontology.TermID, bool) {
	return t.ID, true
}

// normalizePhenotype drops modifiers and unreplaced obsolete terms.
func normalizePhenotype(t *ontology.Term) (ontology.TermID, bool) {
	if t.Modifier || t.Obsolete {
		return 0, false
	}
	return t.ID, true
}

func build(ont *ontology.Ontology, ids []ontology.TermID, policy normalizePolicy) (*Set, error) {
	out := make([]ontology.TermID, 0, len(ids))
	for _, id := range ids {
		term, err := ont.Term(id)
		if err != nil {
			return nil, err
		}
		term, err = resolveObsolete(ont, term)
		if err != nil {
			return nil, err
		}
		kept, ok := policy(term)
		if !ok {
			continue
		}
		out = append(out, kept)
	}
	return fromUnsorted(out), nil
}

// resolveObsolete chases ReplacedBy declarations to a fixed point: the
// first non-obsolete term, or the first obsolete term without a
// declared replacement. A replacement may itself be superseded, so a
// single hop is not enough. Unknown replacement IDs and replacement
// loops fail the construction.
func resolveObsolete(ont *ontology.Ontology, t *ontology.Term) (*ontology.Term, error) {
	seen := map[ontology.TermID]struct{}{t.ID: {}}
	for t.Obsolete && t.ReplacedBy != 0 {
		next, err := ont.Term(t.ReplacedBy)
		if err != nil {
			return nil, fmt.Errorf("replacement of %s: %w", t.ID, err)
		}
		if _, looped := seen[next.ID]; looped {
			return nil, fmt.Errorf("%w: via %s", ErrReplacementCycle, t.ID)
		}
		seen[next.ID] = struct{}{}
		t = next
	}
	return t, nil
}

// fromUnsorted sorts and deduplicates ids into a Set.
func fromUnsorted(ids []ontology.TermID) *Set {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	uniq := ids[:0]
	for i, id := range ids {
		if i == 0 || id != ids[i-1] {
			uniq = append(uniq, id)
		}
	}
	return &Set{ids: uniq}
}

// IDs returns the member term IDs in ascending order. The slice is a
// copy; mutating it does not affect the set.
func (s *Set) IDs() []ontology.TermID {
	out := make([]ontology.TermID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.ids) }

// Contains reports membership of id.
func (s *Set) Contains(id ontology.TermID) bool {
	i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	return i < len(s.ids) && s.ids[i] == id
}

// Terms resolves every member against the ontology.
func (s *Set) Terms(ont *ontology.Ontology) ([]*ontology.Term, error) {
	out := make([]*ontology.Term, len(s.ids))
	for i, id := range s.ids {
		t, err := ont.Term(id)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// Add returns a new set with id included. The member is validated but
// not re-normalized; callers wanting normalization rebuild via the
// constructor of their variant.
func (s *Set) Add(ont *ontology.Ontology, id ontology.TermID) (*Set, error) {
	if _, err := ont.Term(id); err != nil {
		return nil, err
	}
	return fromUnsorted(append(s.IDs(), id)), nil
}

// Remove returns a new set without id. Removing a non-member is a
// no-op, not an error.
func (s *Set) Remove(id ontology.TermID) *Set {
	out := make([]ontology.TermID, 0, len(s.ids))
	for _, x := range s.ids {
		if x != id {
			out = append(out, x)
		}
	}
	return &Set{ids: out}
}

// Union returns a new set holding the members of both sets.
func (s *Set) Union(other *Set) *Set {
	return fromUnsorted(append(s.IDs(), other.ids...))
}

// ChildNodes returns a new set retaining only the most specific
// members: every term that is an ancestor of another member is pruned.
func (s *Set) ChildNodes(ont *ontology.Ontology) (*Set, error) {
	covered := make(map[ontology.TermID]struct{})
	for _, id := range s.ids {
		anc, err := ont.Ancestors(id)
		if err != nil {
			return nil, err
		}
		for _, a := range anc {
			covered[a] = struct{}{}
		}
	}
	out := make([]ontology.TermID, 0, len(s.ids))
	for _, id := range s.ids {
		if _, isAncestor := covered[id]; !isAncestor {
			out = append(out, id)
		}
	}
	return &Set{ids: out}, nil
}

// RemoveModifiers returns a new set without clinical-modifier terms.
func (s *Set) RemoveModifiers(ont *ontology.Ontology) (*Set, error) {
	out := make([]ontology.TermID, 0, len(s.ids))
	for _, id := range s.ids {
		t, err := ont.Term(id)
		if err != nil {
			return nil, err
		}
		if !t.Modifier {
			out = append(out, id)
		}
	}
	return &Set{ids: out}, nil
}

// ReplaceObsolete returns a new set with obsolete members swapped for
// their declared replacement, chains followed to the first live term;
// obsolete members without a replacement are dropped.
func (s *Set) ReplaceObsolete(ont *ontology.Ontology) (*Set, error) {
	out := make([]ontology.TermID, 0, len(s.ids))
	for _, id := range s.ids {
		t, err := ont.Term(id)
		if err != nil {
			return nil, err
		}
		t, err = resolveObsolete(ont, t)
		if err != nil {
			return nil, err
		}
		if t.Obsolete {
			continue
		}
		out = append(out, t.ID)
	}
	return fromUnsorted(out), nil
}

// Serialize encodes the set as its sorted numeric IDs joined by "+",
// e.g. "118+2650+9121". Parse inverts it.
func (s *Set) Serialize() string {
	parts := make([]string, len(s.ids))
	for i, id := range s.ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, "+")
}

// Parse decodes a Serialize encoding into a raw set. An empty string
// parses to the empty set.
func Parse(ont *ontology.Ontology, encoded string) (*Set, error) {
	if encoded == "" {
		return &Set{}, nil
	}
	parts := strings.Split(encoded, "+")
	ids := make([]ontology.TermID, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadSerialization, p)
		}
		ids[i] = ontology.TermID(v)
	}
	return NewRaw(ont, ids...)
}
