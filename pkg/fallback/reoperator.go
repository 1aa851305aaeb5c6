package fallback

import (
	"github.com/wildfunctions/backsolve/pkg/expr"
	"github.com/wildfunctions/backsolve/pkg/pool"
)

func init() {
	Register("reoperator", func() Strategy { return &ReoperatorStrategy{} })
}

// ReoperatorStrategy redraws the node's operation from the pool with
// multiplication removed. Add, subtract and divide invert for every finite
// target, so the redraw always succeeds and the tree stays perfect. A pool
// holding nothing but multiplication falls back to addition.
type ReoperatorStrategy struct{}

func (s *ReoperatorStrategy) Name() string { return "reoperator" }

func (s *ReoperatorStrategy) Resolve(b Builder, target float64, depth int) expr.Node {
	ops := pool.Without(b.Pool(), expr.OpMul)
	rng := b.Rng()
	rng.Shuffle(len(ops), func(i, j int) { ops[i], ops[j] = ops[j], ops[i] })
	for _, op := range ops {
		if n, ok := b.Node(op, target, depth, b.Precision()); ok {
			return n
		}
	}
	n, _ := b.Node(expr.OpAdd, target, depth, b.Precision())
	return n
}
