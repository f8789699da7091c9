package enrich

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// upperTail returns P(X >= k) for X ~ Hypergeometric(N, K, n):
// drawing n items without replacement from a population of N holding
// K successes. The point masses are evaluated through log binomial
// coefficients and summed in probability space; individual terms down
// near 1e-300 still accumulate correctly.
func upperTail(n, successes, draws, k int) float64 {
	hi := min(successes, draws)
	if k > hi {
		return 0
	}
	lo := max(0, draws+successes-n)
	if k <= lo {
		return 1
	}

	logDenom := combin.LogGeneralizedBinomial(float64(n), float64(draws))
	p := 0.0
	for i := k; i <= hi; i++ {
		logMass := combin.LogGeneralizedBinomial(float64(successes), float64(i)) +
			combin.LogGeneralizedBinomial(float64(n-successes), float64(draws-i)) -
			logDenom
		p += math.Exp(logMass)
	}
	// guard against accumulated rounding pushing past 1
	return math.Min(p, 1)
}
