// Package sample draws the bounded random values used as leaf candidates and
// as the free operand when inverting add, subtract and divide.
package sample

import (
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// tenthSpan is the number of distinct SignedTenth outcomes.
const tenthSpan = 1000

// Intn returns a uniform integer in [lo, hi). It panics if hi <= lo, matching
// rand.Intn on an empty range.
func Intn[T constraints.Integer](rng *rand.Rand, lo, hi T) T {
	return lo + T(rng.Int63n(int64(hi-lo)))
}

// Pow10 returns 10^precision as a float64.
func Pow10(precision uint) float64 {
	return math.Pow10(int(precision))
}

// SignedTenth returns a value in [-50.0, 50.0) in steps of 0.1.
func SignedTenth(rng *rand.Rand) float64 {
	return float64(rng.Intn(tenthSpan)-tenthSpan/2) * 0.1
}

// SmallNonzero returns a uniform draw from the integers of [-bound, bound)
// with zero removed, scaled by 10^-precision. The result is never zero, so it
// is always safe to divide by.
func SmallNonzero(rng *rand.Rand, bound int, precision uint) float64 {
	if bound < 1 {
		bound = 1
	}
	// 2*bound-1 outcomes: [-bound, -1] then [1, bound-1].
	v := Intn(rng, -bound, bound-1)
	if v >= 0 {
		v++
	}
	return float64(v) / Pow10(precision)
}
