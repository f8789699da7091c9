// Package ic derives per-term information-content values from
// annotation population counts.
//
// For every (term, category) pair the value is -ln(p), where p is the
// fraction of the category's total population linked to the term.
// A term's linked set is always a subset of each parent's set, so the
// value is monotonically non-decreasing along every descent from the
// root.
//
// Categories with an empty population (e.g. no Orphanet annotations
// loaded at all) resolve every term to 0 instead of dividing by zero:
// missing annotation data is an expected condition, not a caller
// error. Terms with no linked entries likewise score 0.
//
// ⚙️ Usage:
//
//	icx := ic.New(ont, ax)
//	v, err := icx.IC(annot.CategoryOmim, termID)
//	sum, err := icx.SetSummary(annot.CategoryOmim, set)
package ic
