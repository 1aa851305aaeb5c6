package expr

import (
	"fmt"
	"strconv"
)

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "×",
	OpDiv: "÷",
}

// String methods

func (l *Leaf) String() string {
	return strconv.FormatFloat(l.Val, 'f', 1, 64)
}

// String renders the display form. Division is always parenthesized; the
// other operators are printed flat with no precedence-aware bracketing.
func (b *BinaryNode) String() string {
	left := b.Left.String()
	right := b.Right.String()
	sym := binaryOpSymbols[b.Op]
	switch b.Op {
	case OpDiv:
		return fmt.Sprintf("(%s)%s(%s)", left, sym, right)
	default:
		return left + sym + right
	}
}

// LaTeX methods

func (l *Leaf) LaTeX() string {
	return strconv.FormatFloat(l.Val, 'f', 1, 64)
}

func (b *BinaryNode) LaTeX() string {
	left := b.Left.LaTeX()
	right := b.Right.LaTeX()
	switch b.Op {
	case OpAdd:
		return fmt.Sprintf("{%s} + {%s}", left, right)
	case OpSub:
		return fmt.Sprintf("{%s} - {%s}", left, right)
	case OpMul:
		return fmt.Sprintf("{%s} \\times {%s}", left, right)
	case OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", left, right)
	default:
		return ""
	}
}
