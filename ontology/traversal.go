package ontology

import (
	"fmt"
	"sort"
)

// Parents returns the direct parents of a term.
func (o *Ontology) Parents(id TermID) ([]TermID, error) {
	idx, err := o.index(id)
	if err != nil {
		return nil, err
	}
	return o.idsOf(o.parents[idx]), nil
}

// Children returns the direct children of a term.
func (o *Ontology) Children(id TermID) ([]TermID, error) {
	idx, err := o.index(id)
	if err != nil {
		return nil, err
	}
	return o.idsOf(o.children[idx]), nil
}

// Ancestors returns the full transitive parent closure of a term,
// excluding the term itself. The closure is precomputed at build time;
// this is an O(1) lookup plus a copy.
func (o *Ontology) Ancestors(id TermID) ([]TermID, error) {
	idx, err := o.index(id)
	if err != nil {
		return nil, err
	}
	return o.idsOf(o.ancestors[idx]), nil
}

// Descendants returns the full transitive child closure of a term,
// excluding the term itself.
func (o *Ontology) Descendants(id TermID) ([]TermID, error) {
	idx, err := o.index(id)
	if err != nil {
		return nil, err
	}
	return o.idsOf(o.descendants[idx]), nil
}

// Depth returns the number of edges on the shortest descent from the
// root to the term. Unreachable (obsolete, unlinked) terms report -1.
func (o *Ontology) Depth(id TermID) (int, error) {
	idx, err := o.index(id)
	if err != nil {
		return 0, err
	}
	return o.depth[idx], nil
}

// ParentOf reports whether the term is a direct or transitive parent
// of other.
func (o *Ontology) ParentOf(id, other TermID) (bool, error) {
	idx, err := o.index(id)
	if err != nil {
		return false, err
	}
	oidx, err := o.index(other)
	if err != nil {
		return false, err
	}
	return containsIdx(o.ancestors[oidx], idx), nil
}

// ChildOf reports whether the term is a direct or transitive child of
// other.
func (o *Ontology) ChildOf(id, other TermID) (bool, error) {
	return o.ParentOf(other, id)
}

// CommonAncestors returns the intersection of the inclusive ancestor
// closures of a and b: each term counts as its own ancestor here, so
// CommonAncestors(t, t) always contains t. That convention makes the
// most specific shared concept of a term with itself the term itself.
func (o *Ontology) CommonAncestors(a, b TermID) ([]TermID, error) {
	ai, err := o.index(a)
	if err != nil {
		return nil, err
	}
	bi, err := o.index(b)
	if err != nil {
		return nil, err
	}
	return o.idsOf(o.commonAncestorIdx(ai, bi)), nil
}

// commonAncestorIdx intersects the sorted inclusive closures of two
// arena indices.
func (o *Ontology) commonAncestorIdx(ai, bi int) []int {
	ca := inclusiveClosure(ai, o.ancestors[ai])
	cb := inclusiveClosure(bi, o.ancestors[bi])
	var out []int
	i, j := 0, 0
	for i < len(ca) && j < len(cb) {
		switch {
		case ca[i] == cb[j]:
			out = append(out, ca[i])
			i++
			j++
		case ca[i] < cb[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// inclusiveClosure inserts self into an already-sorted exclusive
// closure, keeping the result sorted.
func inclusiveClosure(self int, closure []int) []int {
	out := make([]int, 0, len(closure)+1)
	inserted := false
	for _, x := range closure {
		if !inserted && self < x {
			out = append(out, self)
			inserted = true
		}
		out = append(out, x)
	}
	if !inserted {
		out = append(out, self)
	}
	return out
}

// LCA returns the lowest common ancestor candidates of a and b: the
// common ancestors reachable with the minimal combined number of
// ascending hops from both terms. Several candidates tie when the DAG
// branches symmetrically; callers break the tie (similarity picks the
// highest information content). Candidates are sorted by ID.
func (o *Ontology) LCA(a, b TermID) ([]TermID, error) {
	cands, _, err := o.lcaIdx(a, b)
	if err != nil {
		return nil, err
	}
	return o.idsOf(cands), nil
}

// PathLength returns the shortest undirected path length between two
// terms, routed through their nearest common ancestor. Hops are only
// counted along ascending edges from each side, so the path never
// crosses into semantically unrelated branches.
func (o *Ontology) PathLength(a, b TermID) (int, error) {
	_, dist, err := o.lcaIdx(a, b)
	return dist, err
}

// lcaIdx runs the bidirectional ascent: level maps upward from both
// terms, intersected on the common ancestors, minimizing the combined
// hop count.
func (o *Ontology) lcaIdx(a, b TermID) ([]int, int, error) {
	ai, err := o.index(a)
	if err != nil {
		return nil, 0, err
	}
	bi, err := o.index(b)
	if err != nil {
		return nil, 0, err
	}

	da := o.ascend(ai)
	db := o.ascend(bi)

	best := -1
	var cands []int
	for idx, ha := range da {
		hb, ok := db[idx]
		if !ok {
			continue
		}
		switch sum := ha + hb; {
		case best < 0 || sum < best:
			best = sum
			cands = append(cands[:0], idx)
		case sum == best:
			cands = append(cands, idx)
		}
	}
	if best < 0 {
		return nil, 0, fmt.Errorf("%w: %s and %s", ErrNoPath, a, b)
	}
	sort.Slice(cands, func(i, j int) bool {
		return o.terms[cands[i]].ID < o.terms[cands[j]].ID
	})
	return cands, best, nil
}

// Path returns the term sequence from a up to the nearest common
// ancestor and back down to b, including both endpoints. Candidate
// ancestors tying on combined distance resolve to the lowest term ID.
func (o *Ontology) Path(a, b TermID) ([]TermID, error) {
	cands, _, err := o.lcaIdx(a, b)
	if err != nil {
		return nil, err
	}
	via := cands[0]

	ai, _ := o.index(a)
	bi, _ := o.index(b)
	up, err := o.climbTo(ai, via)
	if err != nil {
		return nil, err
	}
	down, err := o.climbTo(bi, via)
	if err != nil {
		return nil, err
	}

	path := o.idsOf(up)
	for i := len(down) - 2; i >= 0; i-- {
		path = append(path, o.terms[down[i]].ID)
	}
	return path, nil
}

// DistanceToAncestor returns the minimal number of ascending hops from
// the term to anc. Fails with ErrNoPath when anc is not an ancestor.
func (o *Ontology) DistanceToAncestor(id, anc TermID) (int, error) {
	idx, err := o.index(id)
	if err != nil {
		return 0, err
	}
	aidx, err := o.index(anc)
	if err != nil {
		return 0, err
	}
	levels := o.ascend(idx)
	d, ok := levels[aidx]
	if !ok {
		return 0, fmt.Errorf("%w: %s is not an ancestor of %s", ErrNoPath, anc, id)
	}
	return d, nil
}

// Categories returns the top-level classification terms (direct
// children of the root) the term belongs to. A top-level term is its
// own category; the root belongs to itself.
func (o *Ontology) Categories(id TermID) ([]TermID, error) {
	idx, err := o.index(id)
	if err != nil {
		return nil, err
	}
	if idx == o.root {
		return []TermID{o.terms[idx].ID}, nil
	}
	closure := inclusiveClosure(idx, o.ancestors[idx])
	var out []int
	for _, c := range o.children[o.root] {
		if containsIdx(closure, c) {
			out = append(out, c)
		}
	}
	sort.Ints(out)
	return o.idsOf(out), nil
}

// ascend breadth-first walks the parent edges from idx and returns the
// minimal hop count to every inclusive ancestor (idx itself maps to 0).
func (o *Ontology) ascend(idx int) map[int]int {
	levels := map[int]int{idx: 0}
	queue := []int{idx}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range o.parents[cur] {
			if _, seen := levels[p]; seen {
				continue
			}
			levels[p] = levels[cur] + 1
			queue = append(queue, p)
		}
	}
	return levels
}

// climbTo returns one shortest ascending chain from idx to the target
// ancestor, endpoints included.
func (o *Ontology) climbTo(idx, target int) ([]int, error) {
	if idx == target {
		return []int{idx}, nil
	}
	parent := map[int]int{idx: -1}
	queue := []int{idx}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range o.parents[cur] {
			if _, seen := parent[p]; seen {
				continue
			}
			parent[p] = cur
			if p == target {
				chain := []int{p}
				for at := cur; at != -1; at = parent[at] {
					chain = append(chain, at)
				}
				reverseIdx(chain)
				return chain, nil
			}
			queue = append(queue, p)
		}
	}
	return nil, fmt.Errorf("%w: %s is not an ancestor of %s", ErrNoPath, o.terms[target].ID, o.terms[idx].ID)
}

// containsIdx binary-searches a sorted dense index slice.
func containsIdx(sorted []int, x int) bool {
	i := sort.SearchInts(sorted, x)
	return i < len(sorted) && sorted[i] == x
}

func reverseIdx(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
