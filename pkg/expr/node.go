package expr

// Node is the interface for all equation tree nodes. Trees are immutable once
// built: no node exposes a mutator and every BinaryNode owns its children.
type Node interface {
	Eval() float64
	String() string
	LaTeX() string
	NodeCount() int
	Depth() int
}

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

// Ops lists every binary operation in declaration order.
var Ops = []BinaryOp{OpAdd, OpSub, OpMul, OpDiv}

var binaryOpNames = map[BinaryOp]string{
	OpAdd: "add",
	OpSub: "subtract",
	OpMul: "multiply",
	OpDiv: "divide",
}

func (op BinaryOp) String() string {
	if name, ok := binaryOpNames[op]; ok {
		return name
	}
	return "unknown"
}

// Leaf holds a single real value.
type Leaf struct {
	Val float64
}

// BinaryNode applies a binary operation to two child subtrees.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Node
}
