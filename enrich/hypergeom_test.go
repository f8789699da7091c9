package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestUpperTail_ExactValues checks the tail against small closed-form
// hypergeometric probabilities.
func TestUpperTail_ExactValues(t *testing.T) {
	// Hypergeometric(N=5, K=3, n=2): P(2)=3/10, P(1)=6/10, P(0)=1/10.
	assert.InDelta(t, 0.3, upperTail(5, 3, 2, 2), 1e-12)
	assert.InDelta(t, 0.9, upperTail(5, 3, 2, 1), 1e-12)
	assert.InDelta(t, 1.0, upperTail(5, 3, 2, 0), 1e-12)
}

// TestUpperTail_Bounds checks the support boundaries.
func TestUpperTail_Bounds(t *testing.T) {
	assert.Zero(t, upperTail(5, 3, 2, 3), "k above min(K, n) is impossible")
	assert.Equal(t, 1.0, upperTail(5, 3, 2, 0), "k at the support floor is certain")
	assert.Equal(t, 1.0, upperTail(4, 3, 3, 2), "k below max(0, n+K-N) is certain")
}

// TestUpperTail_Monotone verifies the tail shrinks as k grows.
func TestUpperTail_Monotone(t *testing.T) {
	prev := 1.0
	for k := 0; k <= 10; k++ {
		p := upperTail(40, 10, 12, k)
		assert.LessOrEqual(t, p, prev, "tail at k=%d must not exceed k=%d", k, k-1)
		assert.GreaterOrEqual(t, p, 0.0)
		prev = p
	}
}
