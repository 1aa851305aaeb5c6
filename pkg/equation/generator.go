package equation

import (
	"fmt"
	"math/rand"

	"github.com/wildfunctions/backsolve/pkg/builder"
	"github.com/wildfunctions/backsolve/pkg/expr"
	"github.com/wildfunctions/backsolve/pkg/sample"
)

const simpleBound = 10

var simpleOps = []expr.BinaryOp{expr.OpMul, expr.OpAdd, expr.OpSub}

// Generator produces equation values. Like the builder it wraps, it is not
// safe for concurrent use.
type Generator struct {
	rng     *rand.Rand
	builder *builder.Builder
	tiers   map[Difficulty]DepthRange
}

// NewGenerator returns a generator drawing from rng. Tiers missing from tiers
// fall back to DefaultTiers; an invalid range is an error. opts configure the
// underlying tree builder.
func NewGenerator(rng *rand.Rand, tiers map[Difficulty]DepthRange, opts ...builder.Option) (*Generator, error) {
	merged := DefaultTiers()
	for d, r := range tiers {
		if d == Simple {
			return nil, fmt.Errorf("tier %s has no depth range", d)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("tier %s: %w", d, err)
		}
		merged[d] = r
	}
	return &Generator{
		rng:     rng,
		builder: builder.New(rng, opts...),
		tiers:   merged,
	}, nil
}

// Tier returns the depth range used for d.
func (g *Generator) Tier(d Difficulty) (DepthRange, bool) {
	r, ok := g.tiers[d]
	return r, ok
}

// New returns an equation of the given difficulty. Unknown difficulties are
// generated as Complex.
func (g *Generator) New(d Difficulty) Value {
	switch d {
	case Simple:
		return g.NewSimple()
	case Medium:
		return g.NewMedium()
	default:
		return g.NewComplex()
	}
}

// NewSimple returns a flat integer equation a op b with a and b in
// [-10, 10] and op one of ×, + or -.
func (g *Generator) NewSimple() Value {
	base := sample.Intn(g.rng, -simpleBound, simpleBound+1)
	operand := sample.Intn(g.rng, -simpleBound, simpleBound+1)
	op := simpleOps[g.rng.Intn(len(simpleOps))]
	return newFlatValue(base, op, operand)
}

// NewMedium returns a tree drawn from the Medium depth range.
func (g *Generator) NewMedium() Value {
	return g.newTree(Medium)
}

// NewComplex returns a tree drawn from the Complex depth range.
func (g *Generator) NewComplex() Value {
	return g.newTree(Complex)
}

func (g *Generator) newTree(d Difficulty) Value {
	r := g.tiers[d]
	depth := sample.Intn(g.rng, r.Min, r.Max)
	target := sample.SignedTenth(g.rng)
	return newTreeValue(d, g.builder.Build(target, depth))
}
