// Package similarity defines the method and combiner enums plus their
// parsers and sentinel errors.
package similarity

import (
	"errors"
	"fmt"
)

// Sentinel errors for similarity configuration.
var (
	// ErrUnknownMethod is returned for unrecognized term-similarity
	// method names.
	ErrUnknownMethod = errors.New("similarity: unknown method")

	// ErrUnknownCombiner is returned for unrecognized set-combiner
	// names.
	ErrUnknownCombiner = errors.New("similarity: unknown combiner")
)

// Method selects the term-pair similarity algorithm.
type Method int

const (
	// Resnik scores the information content of the lowest common
	// ancestor (Resnik P, IJCAI 1995).
	Resnik Method = iota
	// Lin normalizes Resnik by both terms' own information content
	// (Lin D, ICML 1998).
	Lin
	// JC converts the Jiang-Conrath distance into a similarity
	// (Jiang J, Conrath D, ROCLING X 1997).
	JC
	// JC2 is an alias of JC kept for compatibility with older callers.
	JC2
	// Rel is the Schlicker relevance measure (Schlicker A et al.,
	// BMC Bioinformatics 2006).
	Rel
	// InfoCoef is the Li information coefficient (Li B et al.,
	// arXiv 2010).
	InfoCoef
	// Graphic is the graph-based information coefficient (Deng Y et
	// al., PLoS One 2015).
	Graphic
	// Dist scores pure graph distance through the nearest common
	// ancestor, ignoring information content.
	Dist
)

// String returns the canonical method name accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case Resnik:
		return "resnik"
	case Lin:
		return "lin"
	case JC:
		return "jc"
	case JC2:
		return "jc2"
	case Rel:
		return "rel"
	case InfoCoef:
		return "ic"
	case Graphic:
		return "graphic"
	case Dist:
		return "dist"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod converts a method name into a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "resnik":
		return Resnik, nil
	case "lin":
		return Lin, nil
	case "jc":
		return JC, nil
	case "jc2":
		return JC2, nil
	case "rel":
		return Rel, nil
	case "ic":
		return InfoCoef, nil
	case "graphic":
		return Graphic, nil
	case "dist":
		return Dist, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Combiner reduces a pairwise score matrix to one set-level score.
type Combiner int

const (
	// FunSimAvg averages the two one-directional best-match means
	// (Schlicker A, BMC Bioinformatics 2006).
	FunSimAvg Combiner = iota
	// FunSimMax takes the larger of the two one-directional means.
	FunSimMax
	// BMA is the one-directional best-match average over rows
	// (Deng Y et al., PLoS One 2015).
	BMA
)

// String returns the canonical combiner name accepted by ParseCombiner.
func (c Combiner) String() string {
	switch c {
	case FunSimAvg:
		return "funSimAvg"
	case FunSimMax:
		return "funSimMax"
	case BMA:
		return "BMA"
	default:
		return fmt.Sprintf("combiner(%d)", int(c))
	}
}

// ParseCombiner converts a combiner name into a Combiner.
func ParseCombiner(s string) (Combiner, error) {
	switch s {
	case "funSimAvg":
		return FunSimAvg, nil
	case "funSimMax":
		return FunSimMax, nil
	case "BMA":
		return BMA, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCombiner, s)
	}
}
