package expr

import "math"

// Eval for Leaf returns the stored value.
func (l *Leaf) Eval() float64 {
	return l.Val
}

// Eval for BinaryNode reduces both children, then applies the operation.
// Division is true division; a zero divisor yields ±Inf or NaN.
func (b *BinaryNode) Eval() float64 {
	left := b.Left.Eval()
	right := b.Right.Eval()

	switch b.Op {
	case OpAdd:
		return left + right
	case OpSub:
		return left - right
	case OpMul:
		return left * right
	case OpDiv:
		return left / right
	default:
		return math.NaN()
	}
}

// Within reports whether the tree evaluates to within tol of candidate.
func Within(n Node, candidate, tol float64) bool {
	return math.Abs(n.Eval()-candidate) < tol
}

// Finite reports whether the tree evaluates to a finite number.
func Finite(n Node) bool {
	v := n.Eval()
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
