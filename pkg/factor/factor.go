// Package factor enumerates factor pairs of real numbers at a fixed decimal
// precision, for inverting multiplication.
package factor

import (
	"math"
	"math/rand"

	"github.com/wildfunctions/backsolve/pkg/sample"
)

// gridTolerance bounds how far a target may sit from the precision grid and
// still count as representable there.
const gridTolerance = 1e-9

// Pair is one (left, right) factorization of a target.
type Pair struct {
	Left, Right float64
}

// Product returns Left * Right.
func (p Pair) Product() float64 { return p.Left * p.Right }

// Scale converts |target| to the integer domain of a product of two factors
// with precision decimals each, e.g. -16.4 at precision 1 becomes 1640.
func Scale(target float64, precision uint) int64 {
	return int64(math.Round(math.Abs(target) * sample.Pow10(2*precision)))
}

// Exact reports whether the factor pairs of target at the given precision
// multiply back to target exactly.
func Exact(target float64, precision uint) bool {
	p := sample.Pow10(2 * precision)
	return math.Abs(float64(Scale(target, precision))/p-math.Abs(target)) < gridTolerance
}

// Pairs returns every factor pair of target whose members carry at most
// precision decimals. Divisors d of the scaled target are scanned from 1 to
// floor(sqrt(scaled)) and each yields (d, scaled/d), both divided by
// 10^precision. Signs are restored per pair so that the product carries the
// sign of target: a non-negative target gets two matching signs, a negative
// target gets exactly one negated member, chosen at random.
//
// A target that scales to zero yields an empty slice; callers must treat that
// as a recoverable failure.
func Pairs(rng *rand.Rand, target float64, precision uint) []Pair {
	scaled := Scale(target, precision)
	if scaled == 0 {
		return nil
	}
	p := sample.Pow10(precision)
	negative := math.Signbit(target)
	limit := int64(math.Sqrt(float64(scaled)))

	var pairs []Pair
	for d := int64(1); d <= limit; d++ {
		if scaled%d != 0 {
			continue
		}
		left := float64(d) / p
		right := float64(scaled/d) / p

		flip := rng.Intn(2) == 0
		switch {
		case !negative && flip:
			left, right = -left, -right
		case negative && flip:
			left = -left
		case negative:
			right = -right
		}
		pairs = append(pairs, Pair{Left: left, Right: right})
	}
	return pairs
}

// Choose picks one pair uniformly at random. ok is false for an empty slice.
func Choose(rng *rand.Rand, pairs []Pair) (Pair, bool) {
	if len(pairs) == 0 {
		return Pair{}, false
	}
	return pairs[rng.Intn(len(pairs))], true
}
