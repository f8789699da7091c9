// Package similarity scores how close two HPO terms — or two whole
// phenotype profiles — are, using information content and graph
// distance.
//
// 🚀 Term-pair methods:
//
//   - Resnik   — IC of the lowest common ancestor; the more specific
//     the shared concept, the higher the score
//   - Lin      — Resnik normalized by both terms' own IC, in [0, 1]
//   - JC / JC2 — Jiang-Conrath distance folded into a similarity
//   - Rel      — Schlicker relevance: Lin damped by the LCA frequency
//   - InfoCoef — Li information coefficient
//   - Graphic  — graph information coefficient: shared ancestor IC
//     mass over the IC mass of the ancestor union
//   - Dist     — pure path-length similarity, no IC needed
//
// ✨ Set-to-set similarity builds the full pairwise score matrix and
// reduces it with a combiner:
//
//   - FunSimAvg — average of both one-directional best-match means
//   - FunSimMax — the larger of the two one-directional means
//   - BMA       — one-directional best-match average (rows only)
//
// An empty set on either side scores 0: an absent profile carries no
// information, it is not an error.
//
// ⚙️ Usage:
//
//	s, err := similarity.New(ont, icx, annot.CategoryOmim, similarity.Resnik)
//	v, err := s.Calc(a, b)
//	g, err := s.CalcSet(setA, setB, similarity.FunSimAvg)
package similarity
