package expr

func (l *Leaf) NodeCount() int { return 1 }
func (b *BinaryNode) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}

// Depth counts edges on the longest root-to-leaf path, so a Leaf is 0 and a
// tree built for depth d reports d.
func (l *Leaf) Depth() int { return 0 }
func (b *BinaryNode) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// Walk visits every node in pre-order together with its edge distance from
// the root.
func Walk(root Node, fn func(n Node, depth int)) {
	walk(root, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int)) {
	fn(n, depth)
	if b, ok := n.(*BinaryNode); ok {
		walk(b.Left, depth+1, fn)
		walk(b.Right, depth+1, fn)
	}
}

// LeafDepths returns the edge distance of every leaf, left to right.
func LeafDepths(root Node) []int {
	var depths []int
	Walk(root, func(n Node, depth int) {
		if _, ok := n.(*Leaf); ok {
			depths = append(depths, depth)
		}
	})
	return depths
}

// Perfect reports whether every leaf sits at the same depth.
func Perfect(root Node) bool {
	depths := LeafDepths(root)
	for _, d := range depths[1:] {
		if d != depths[0] {
			return false
		}
	}
	return true
}

// CountOps returns how many times each operation appears in the tree.
func CountOps(root Node) map[BinaryOp]int {
	counts := make(map[BinaryOp]int)
	Walk(root, func(n Node, _ int) {
		if b, ok := n.(*BinaryNode); ok {
			counts[b.Op]++
		}
	})
	return counts
}
