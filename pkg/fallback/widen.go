package fallback

import "github.com/wildfunctions/backsolve/pkg/expr"

func init() {
	Register("widen", func() Strategy { return &WidenStrategy{} })
}

// WidenStrategy retries the factorization one decimal digit at a time up to
// MaxPrecision, so targets such as 1.55 still become products. Targets that
// scale to zero at every precision are handed to ReoperatorStrategy.
type WidenStrategy struct{}

func (s *WidenStrategy) Name() string { return "widen" }

func (s *WidenStrategy) Resolve(b Builder, target float64, depth int) expr.Node {
	for p := b.Precision() + 1; p <= MaxPrecision; p++ {
		if n, ok := b.Node(expr.OpMul, target, depth, p); ok {
			return n
		}
	}
	return (&ReoperatorStrategy{}).Resolve(b, target, depth)
}
