// Package hposet provides duplicate-free collections of HPO terms
// representing one subject's phenotype profile.
//
// Three constructors differ only in the normalization they apply:
//
//   - NewRaw       — replaces obsolete terms via their declared
//     replacement and keeps everything else as given, modifiers
//     included.
//   - NewBasic     — removes modifier terms, replaces or drops obsolete
//     terms, and prunes every term that is an ancestor of another
//     member, retaining only the most specific terms.
//   - NewPhenotype — removes modifiers and resolves obsolete terms but
//     keeps ancestor/descendant redundancy.
//
// Sets are value-like after construction: Add, Remove, Union and the
// normalization methods all return a new Set and never mutate one a
// caller may share.
//
// ⚙️ Usage:
//
//	set, err := hposet.NewBasic(ont, ids...)
//	smaller := set.Remove(id)
//	wire := set.Serialize()            // "118+2650+9121"
//	back, err := hposet.Parse(ont, wire)
package hposet
