// Package phenokit is an in-memory toolkit for the Human Phenotype
// Ontology — load it once, then compare, cluster and score phenotype
// profiles against genes and diseases.
//
// 🚀 What is phenokit?
//
//	A read-only, arena-backed model of the HPO term DAG plus the
//	algorithms that bioinformaticians run on top of it:
//	  • Term graph: ancestor/descendant closures, common ancestors,
//	    shortest paths through the nearest common ancestor
//	  • Annotations: gene, OMIM and Orphanet links, inherited bottom-up
//	  • Information content per annotation category
//	  • Term and set similarity: Resnik, Lin, Jiang-Conrath, Relevance,
//	    Information Coefficient, GraphIC and pure graph distance
//	  • Hypergeometric enrichment of genes and diseases
//	  • Parallel batch evaluation with stable input ordering
//	  • Linkage rows for hierarchical clustering / dendrograms
//
// ✨ Why choose phenokit?
//
//   - Immutable after load — share one Ontology across every goroutine,
//     no locks, no copies
//   - Dense integer arena — no pointer cycles, no reference counting
//   - Explicit context objects — nothing hides in package globals
//   - Errors are sentinels — test them with errors.Is
//
// Everything is organized under focused subpackages:
//
//	ontology/   — the term arena, traversals and lookups
//	hposet/     — normalized phenotype term sets
//	annot/      — gene and disease annotation indices
//	ic/         — information-content values and set summaries
//	similarity/ — term-pair and set-set similarity methods
//	enrich/     — hypergeometric enrichment models
//	batch/      — parallel fan-out over independent comparisons
//	linkage/    — hierarchical-clustering encoding for dendrograms
//
// Quick ASCII example:
//
//	        HP:0000001 (All)
//	        /          \
//	  HP:0000118      HP:0012823
//	  (Phenotype)     (Modifier)
//	     |
//	  HP:0000707 ...
//
// Build the ontology from loader output, then hand the same immutable
// instance to every engine that needs it.
package phenokit
