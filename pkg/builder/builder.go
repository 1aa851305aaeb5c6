// Package builder generates equation trees backwards: it starts from the
// value the tree must evaluate to and inverts a random operation at every
// level to derive the targets of both children.
package builder

import (
	"math/rand"

	"github.com/wildfunctions/backsolve/pkg/expr"
	"github.com/wildfunctions/backsolve/pkg/factor"
	"github.com/wildfunctions/backsolve/pkg/fallback"
	"github.com/wildfunctions/backsolve/pkg/pool"
	"github.com/wildfunctions/backsolve/pkg/sample"
)

const (
	// DefaultPrecision is the number of decimals each factor may carry.
	DefaultPrecision = 1

	divisorBound     = 50
	divisorPrecision = 1
)

// Builder inverts targets into trees. It is not safe for concurrent use: it
// draws from a single *rand.Rand.
type Builder struct {
	rng            *rand.Rand
	pool           pool.Pool
	fallback       fallback.Strategy
	precision      uint
	legacySubtract bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithPool sets the operations internal nodes are drawn from.
func WithPool(p pool.Pool) Option {
	return func(b *Builder) { b.pool = p }
}

// WithFallback sets how a node recovers from a failed multiplication.
func WithFallback(s fallback.Strategy) Option {
	return func(b *Builder) { b.fallback = s }
}

// WithPrecision sets the factor precision for multiplication.
func WithPrecision(precision uint) Option {
	return func(b *Builder) { b.precision = precision }
}

// WithLegacySubtract selects the subtract rule right = target + left, under
// which a subtract node evaluates to -target instead of target.
func WithLegacySubtract(on bool) Option {
	return func(b *Builder) { b.legacySubtract = on }
}

// New returns a builder drawing from rng. Without options it uses all four
// operations, the reoperator fallback and one decimal of factor precision.
func New(rng *rand.Rand, opts ...Option) *Builder {
	b := &Builder{
		rng:       rng,
		pool:      pool.New(pool.Default, expr.Ops...),
		fallback:  &fallback.ReoperatorStrategy{},
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Rng() *rand.Rand      { return b.rng }
func (b *Builder) Pool() pool.Pool      { return b.pool }
func (b *Builder) Precision() uint      { return b.precision }
func (b *Builder) LegacySubtract() bool { return b.legacySubtract }

// Build returns a tree of the given depth that evaluates to target. Depth 0
// is a single leaf. Every leaf of the result sits exactly depth edges below
// the root unless the leaf fallback cut a branch short.
func (b *Builder) Build(target float64, depth int) expr.Node {
	if depth <= 0 {
		return &expr.Leaf{Val: target}
	}
	if n, ok := b.Node(b.pool.RandomOp(b.rng), target, depth, b.precision); ok {
		return n
	}
	return b.fallback.Resolve(b, target, depth)
}

// Node inverts op against target and builds both children at depth-1.
// ok is false when op cannot be inverted for target at the given precision.
func (b *Builder) Node(op expr.BinaryOp, target float64, depth int, precision uint) (expr.Node, bool) {
	left, right, ok := b.invert(op, target, precision)
	if !ok {
		return nil, false
	}
	return &expr.BinaryNode{
		Op:    op,
		Left:  b.Build(left, depth-1),
		Right: b.Build(right, depth-1),
	}, true
}

// Invert derives the child targets for a single op node evaluating to target.
func (b *Builder) Invert(op expr.BinaryOp, target float64) (left, right float64, ok bool) {
	return b.invert(op, target, b.precision)
}

func (b *Builder) invert(op expr.BinaryOp, target float64, precision uint) (left, right float64, ok bool) {
	switch op {
	case expr.OpAdd:
		left = sample.SignedTenth(b.rng)
		return left, target - left, true

	case expr.OpSub:
		left = sample.SignedTenth(b.rng)
		if b.legacySubtract {
			return left, target + left, true
		}
		return left, left - target, true

	case expr.OpMul:
		// Off-grid targets factor into pairs that miss the target.
		if !factor.Exact(target, precision) {
			return 0, 0, false
		}
		pair, found := factor.Choose(b.rng, factor.Pairs(b.rng, target, precision))
		if !found {
			return 0, 0, false
		}
		return pair.Left, pair.Right, true

	case expr.OpDiv:
		right = sample.SmallNonzero(b.rng, divisorBound, divisorPrecision)
		return right * target, right, true

	default:
		return 0, 0, false
	}
}
