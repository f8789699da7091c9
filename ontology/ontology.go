package ontology

import (
	"fmt"
	"sort"
	"strings"
)

// Ontology is the immutable term arena plus every index derived from
// it at build time. One instance is built per process and shared,
// read-only, by all downstream components.
type Ontology struct {
	version string
	terms   []Term
	byID    map[TermID]int
	root    int

	// dense adjacency, symmetric by construction
	parents  [][]int
	children [][]int

	// precomputed per-term state, part of the immutable snapshot
	depth       []int // hops from root, -1 when unreachable
	topo        []int // parents-before-children order
	ancestors   [][]int
	descendants [][]int
}

// Build validates the loader records and constructs the ontology.
// It fails with ErrDuplicateTerm, ErrDanglingParent, ErrNoRoot,
// ErrMultipleRoots, ErrCycle or ErrUnreachableTerm; a graph that
// violates any structural invariant never becomes queryable.
func Build(src Source, opts ...Option) (*Ontology, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(src.Terms)
	ont := &Ontology{
		version:  src.Version,
		terms:    make([]Term, n),
		byID:     make(map[TermID]int, n),
		parents:  make([][]int, n),
		children: make([][]int, n),
		depth:    make([]int, n),
	}

	for i, rec := range src.Terms {
		if _, dup := ont.byID[rec.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTerm, rec.ID)
		}
		ont.byID[rec.ID] = i
		ont.terms[i] = Term{
			ID:         rec.ID,
			Name:       rec.Name,
			Obsolete:   rec.Obsolete,
			ReplacedBy: rec.ReplacedBy,
			Modifier:   rec.Modifier,
			idx:        i,
		}
	}

	// Wire symmetric adjacency from the declared parent lists.
	for i, rec := range src.Terms {
		for _, pid := range rec.Parents {
			p, ok := ont.byID[pid]
			if !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrDanglingParent, rec.ID, pid)
			}
			ont.parents[i] = append(ont.parents[i], p)
			ont.children[p] = append(ont.children[p], i)
		}
	}

	if err := ont.resolveRoot(o.root); err != nil {
		return nil, err
	}
	if err := ont.sortTopologically(); err != nil {
		return nil, err
	}
	ont.computeDepths()
	if err := ont.verifyReachability(); err != nil {
		return nil, err
	}
	ont.computeClosures()

	return ont, nil
}

// verifyReachability checks the depth pass covered every live term: a
// non-obsolete term outside the root's cone would silently fall out of
// closures, similarity and annotation inheritance.
func (o *Ontology) verifyReachability() error {
	for i := range o.terms {
		if o.depth[i] < 0 && !o.terms[i].Obsolete {
			return fmt.Errorf("%w: %s never descends from %s", ErrUnreachableTerm, o.terms[i].ID, o.terms[o.root].ID)
		}
	}
	return nil
}

// resolveRoot picks (or verifies) the single root term. Obsolete terms
// are typically unlinked and never qualify as root.
func (o *Ontology) resolveRoot(explicit TermID) error {
	if explicit != 0 {
		idx, ok := o.byID[explicit]
		if !ok {
			return fmt.Errorf("%w: declared root %s", ErrTermNotFound, explicit)
		}
		o.root = idx
		return nil
	}

	o.root = -1
	for i := range o.terms {
		if o.terms[i].Obsolete || len(o.parents[i]) > 0 {
			continue
		}
		if o.root >= 0 {
			return fmt.Errorf("%w: %s and %s", ErrMultipleRoots, o.terms[o.root].ID, o.terms[i].ID)
		}
		o.root = i
	}
	if o.root < 0 {
		return ErrNoRoot
	}
	return nil
}

// sortTopologically runs Kahn's algorithm over the parent relation.
// The resulting order lists every parent before its children; a cycle
// leaves unprocessed terms behind and fails the build.
func (o *Ontology) sortTopologically() error {
	n := len(o.terms)
	indegree := make([]int, n)
	for i := range o.terms {
		indegree[i] = len(o.parents[i])
	}

	queue := make([]int, 0, n)
	for i := range o.terms {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	o.topo = make([]int, 0, n)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		o.topo = append(o.topo, cur)
		for _, c := range o.children[cur] {
			indegree[c]--
			if indegree[c] == 0 {
				queue = append(queue, c)
			}
		}
	}
	if len(o.topo) != n {
		return ErrCycle
	}
	return nil
}

// computeDepths walks breadth-first down from the root. Terms outside
// the root's descendant cone (obsolete orphans) keep depth -1.
func (o *Ontology) computeDepths() {
	for i := range o.depth {
		o.depth[i] = -1
	}
	o.depth[o.root] = 0
	queue := []int{o.root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range o.children[cur] {
			if o.depth[c] >= 0 {
				continue
			}
			o.depth[c] = o.depth[cur] + 1
			queue = append(queue, c)
		}
	}
}

// computeClosures materializes the full ancestor and descendant
// closure of every term in a single pass per direction: ancestors in
// topological order (parents are always finished first), descendants
// in reverse. O(terms + edges) passes over precomputed sets.
func (o *Ontology) computeClosures() {
	n := len(o.terms)
	o.ancestors = make([][]int, n)
	o.descendants = make([][]int, n)

	for _, i := range o.topo {
		o.ancestors[i] = unionNeighborClosures(o.parents[i], o.ancestors)
	}
	for k := n - 1; k >= 0; k-- {
		i := o.topo[k]
		o.descendants[i] = unionNeighborClosures(o.children[i], o.descendants)
	}
}

// unionNeighborClosures merges each neighbor and its already-computed
// closure into one sorted, duplicate-free dense index slice.
func unionNeighborClosures(neighbors []int, closures [][]int) []int {
	if len(neighbors) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(neighbors)*4)
	for _, nb := range neighbors {
		seen[nb] = struct{}{}
		for _, x := range closures[nb] {
			seen[x] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for x := range seen {
		out = append(out, x)
	}
	sort.Ints(out)
	return out
}

// Version returns the declared ontology version, e.g. "2024-04-26".
func (o *Ontology) Version() string { return o.version }

// Len returns the number of terms in the arena.
func (o *Ontology) Len() int { return len(o.terms) }

// Root returns the single root term.
func (o *Ontology) Root() *Term { return &o.terms[o.root] }

// Term resolves a numeric term ID. Fails with ErrTermNotFound for
// unknown IDs.
func (o *Ontology) Term(id TermID) (*Term, error) {
	idx, ok := o.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTermNotFound, id)
	}
	return &o.terms[idx], nil
}

// TermByName resolves a canonical "HP:0000123" string or an exact term
// name, in that order.
func (o *Ontology) TermByName(q string) (*Term, error) {
	if strings.HasPrefix(q, "HP:") {
		id, err := ParseTermID(q)
		if err != nil {
			return nil, err
		}
		return o.Term(id)
	}
	return o.Match(q)
}

// Terms returns every term in arena order. The order is unspecified
// across differently-loaded instances but stable within one.
func (o *Ontology) Terms() []*Term {
	out := make([]*Term, len(o.terms))
	for i := range o.terms {
		out[i] = &o.terms[i]
	}
	return out
}

// TopologicalOrder returns all term IDs with every parent listed
// before its children. Downstream bottom-up aggregations iterate it in
// reverse.
func (o *Ontology) TopologicalOrder() []TermID {
	out := make([]TermID, len(o.topo))
	for k, idx := range o.topo {
		out[k] = o.terms[idx].ID
	}
	return out
}

// Match returns the term whose name equals q exactly.
func (o *Ontology) Match(q string) (*Term, error) {
	for i := range o.terms {
		if o.terms[i].Name == q {
			return &o.terms[i], nil
		}
	}
	return nil, fmt.Errorf("%w: name %q", ErrTermNotFound, q)
}

// Search returns every term whose name contains q, ranked best match
// first: exact name, then prefix, then substring matches, each group
// ordered lexicographically by canonical ID.
func (o *Ontology) Search(q string) []*Term {
	type hit struct {
		term *Term
		rank int
	}
	var hits []hit
	for i := range o.terms {
		name := o.terms[i].Name
		switch {
		case name == q:
			hits = append(hits, hit{&o.terms[i], 0})
		case strings.HasPrefix(name, q):
			hits = append(hits, hit{&o.terms[i], 1})
		case strings.Contains(name, q):
			hits = append(hits, hit{&o.terms[i], 2})
		}
	}
	sort.Slice(hits, func(a, b int) bool {
		if hits[a].rank != hits[b].rank {
			return hits[a].rank < hits[b].rank
		}
		return hits[a].term.ID < hits[b].term.ID
	})
	out := make([]*Term, len(hits))
	for i, h := range hits {
		out[i] = h.term
	}
	return out
}

// idsOf converts dense arena indices back to TermIDs.
func (o *Ontology) idsOf(idxs []int) []TermID {
	out := make([]TermID, len(idxs))
	for i, idx := range idxs {
		out[i] = o.terms[idx].ID
	}
	return out
}

// index resolves a TermID to its dense arena index.
func (o *Ontology) index(id TermID) (int, error) {
	idx, ok := o.byID[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrTermNotFound, id)
	}
	return idx, nil
}
