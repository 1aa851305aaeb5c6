package pool

import "github.com/wildfunctions/backsolve/pkg/expr"

func init() {
	// All four operations, drawn uniformly.
	Register("arithmetic", func() Pool {
		return New("arithmetic", expr.OpAdd, expr.OpSub, expr.OpMul, expr.OpDiv)
	})
	// Sums and differences only; every leaf stays on the 0.1 grid.
	Register("additive", func() Pool {
		return New("additive", expr.OpAdd, expr.OpSub)
	})
	Register("multiplicative", func() Pool {
		return New("multiplicative", expr.OpMul, expr.OpDiv)
	})
}

// Default is the pool used when none is configured.
const Default = "arithmetic"
