// Package equation wraps generated trees in opaque values that can be
// displayed, evaluated and graded, one constructor per difficulty tier.
package equation

import (
	"fmt"
	"math"

	"github.com/wildfunctions/backsolve/pkg/expr"
)

// Tolerance is the largest difference between an answer and the exact value
// that CompareValue still accepts.
const Tolerance = 0.001

type kind int

const (
	kindFlat kind = iota
	kindTree
)

var flatSymbols = map[expr.BinaryOp]string{
	expr.OpAdd: "+",
	expr.OpSub: "-",
	expr.OpMul: "×",
}

var flatLaTeX = map[expr.BinaryOp]string{
	expr.OpAdd: "+",
	expr.OpSub: "-",
	expr.OpMul: `\times`,
}

// flat is a two-operand integer equation, e.g. "3 × -4".
type flat struct {
	base, operand int
	op            expr.BinaryOp
}

func (f flat) value() float64 {
	a, b := float64(f.base), float64(f.operand)
	switch f.op {
	case expr.OpAdd:
		return a + b
	case expr.OpSub:
		return a - b
	case expr.OpMul:
		return a * b
	default:
		return math.NaN()
	}
}

// Value is one immutable equation instance. The zero Value is not usable;
// obtain values from a Generator.
type Value struct {
	difficulty Difficulty
	kind       kind
	flat       flat
	tree       expr.Node
}

func newTreeValue(d Difficulty, tree expr.Node) Value {
	return Value{difficulty: d, kind: kindTree, tree: tree}
}

func newFlatValue(base int, op expr.BinaryOp, operand int) Value {
	return Value{difficulty: Simple, kind: kindFlat, flat: flat{base: base, operand: operand, op: op}}
}

// String returns the display form of the equation.
func (v Value) String() string {
	if v.kind == kindFlat {
		return fmt.Sprintf("%d %s %d", v.flat.base, flatSymbols[v.flat.op], v.flat.operand)
	}
	return v.tree.String()
}

// LaTeX returns the equation as a LaTeX math expression.
func (v Value) LaTeX() string {
	if v.kind == kindFlat {
		return fmt.Sprintf("%d %s %d", v.flat.base, flatLaTeX[v.flat.op], v.flat.operand)
	}
	return v.tree.LaTeX()
}

// CalcValue returns the exact evaluated value.
func (v Value) CalcValue() float64 {
	if v.kind == kindFlat {
		return v.flat.value()
	}
	return v.tree.Eval()
}

// CompareValue reports whether candidate is within Tolerance of the exact
// value. It is the only way answers should be graded; never compare the
// result of CalcValue with ==.
func (v Value) CompareValue(candidate float64) bool {
	return math.Abs(v.CalcValue()-candidate) < Tolerance
}

// Difficulty returns the tier the value was generated for.
func (v Value) Difficulty() Difficulty { return v.difficulty }

// Depth returns the tree depth; flat equations report 1.
func (v Value) Depth() int {
	if v.kind == kindFlat {
		return 1
	}
	return v.tree.Depth()
}
