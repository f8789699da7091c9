// Package enrich tests which genes or diseases are statistically
// over-represented among the entries linked to an observed phenotype
// term set.
//
// For every candidate entry — any gene/disease sharing at least one
// term with the observed set — the model computes an upper-tail
// hypergeometric p-value and a fold-enrichment ratio:
//
//	population N = distinct entries in the category (the root's count)
//	successes  K = entries linked to any observed term
//	sample     n = observed terms carrying at least one linked entry
//	observed   k = observed terms linked to this entry
//
//	p = P(X >= k | N, K, n)      fold = (k/n) / (K/N)
//
// The tail is accumulated in log space so the astronomically small
// p-values typical of well-matched profiles survive in float64.
//
// Results come back most significant first: p ascending, ties by fold
// descending, then entry ID. An observed set with no recognized terms
// yields an empty slice, not an error.
//
// ⚙️ Usage:
//
//	m, err := enrich.NewModel(ont, ax, annot.CategoryGene)
//	results, err := m.Enrichment(patientSet)
package enrich
