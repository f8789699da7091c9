// Package ontology models the Human Phenotype Ontology term DAG as an
// immutable, arena-backed graph.
//
// 🚀 What does it give you?
//
//	Build the graph once from loader output, then query it forever:
//	  • lookup by numeric ID, canonical "HP:0000123" ID, or name
//	  • direct parents/children and full ancestor/descendant closures
//	  • depth from the root, common ancestors, LCA candidates
//	  • shortest paths routed through the nearest common ancestor
//	  • ranked substring search and exact name matching
//
// ✨ Design guarantees:
//
//   - Single root, acyclic, symmetric adjacency — validated at build
//     time; a structurally broken graph never leaves Build.
//   - Every cross-reference is a dense integer index into one arena;
//     no pointer cycles, no reference counting.
//   - Ancestor/descendant closures and depths are precomputed during
//     Build and never change, so concurrent readers need no locks.
//
// ⚙️ Usage:
//
//	ont, err := ontology.Build(src)
//	if err != nil {
//	  // ErrNoRoot, ErrCycle, ErrDanglingParent, ...
//	}
//	term, err := ont.Term(ontology.TermID(118))
//	anc, _ := ont.Ancestors(term.ID)
//
// Performance: Build is O(terms + edges); all closure queries are O(1)
// slice lookups afterwards.
package ontology
