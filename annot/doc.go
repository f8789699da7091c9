// Package annot indexes gene and disease annotations against the
// ontology term graph.
//
// 🚀 What does it give you?
//
//	Built once from the loader's raw link tables, the Index answers:
//	  • which genes / OMIM diseases / Orphanet diseases a term carries,
//	    including entries inherited from every descendant term
//	  • the reverse: the authoritative phenotype profile of a gene or
//	    disease, as a basic-normalized HPO set
//	  • per-category population counts that feed information content
//	    and enrichment statistics
//
// Inherited sets are materialized bottom-up in one reverse-topological
// pass: a term's entry set is the union of its direct links and its
// children's already-computed sets, O(terms + edges) set unions total
// instead of one ancestor walk per query.
//
// ⚙️ Usage:
//
//	ix, err := annot.NewIndex(ont, tables)
//	genes, err := ix.GenesOf(termID)
//	profile, err := ix.HpoSetOf(annot.CategoryGene, geneID)
package annot
