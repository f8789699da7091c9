package linkage

import (
	"errors"
	"fmt"
)

// Sentinel errors for clustering configuration.
var (
	// ErrNilEngine is returned when the similarity engine is nil.
	ErrNilEngine = errors.New("linkage: nil similarity engine")

	// ErrUnknownMethod is returned for an unrecognized linkage method.
	ErrUnknownMethod = errors.New("linkage: unknown linkage method")
)

// Method selects how inter-cluster distances evolve after a merge.
type Method uint8

const (
	// Single takes the minimum distance over the merged members.
	Single Method = iota
	// Complete takes the maximum distance over the merged members.
	Complete
	// Average takes the size-weighted mean distance (UPGMA).
	Average
	// Union merges the underlying term sets and recomputes distances.
	Union

	numMethods
)

var methodNames = [numMethods]string{"single", "complete", "average", "union"}

// String returns the canonical lowercase method name.
func (m Method) String() string {
	if m >= numMethods {
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
	return methodNames[m]
}

// ParseMethod resolves a method name; it accepts exactly the strings
// produced by String.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Row is one merge step of the clustering: clusters A and B were
// joined at the given distance into a new cluster of Size members.
type Row struct {
	// A and B are the indices of the merged clusters, A < B. Inputs
	// occupy 0..n-1; the cluster created at step i is n+i.
	A, B int
	// Distance is the inter-cluster distance at which the merge
	// happened.
	Distance float64
	// Size is the member count of the merged cluster.
	Size int
}
