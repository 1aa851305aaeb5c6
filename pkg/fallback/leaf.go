package fallback

import "github.com/wildfunctions/backsolve/pkg/expr"

func init() {
	Register("leaf", func() Strategy { return &LeafStrategy{} })
}

// LeafStrategy ends the branch early with the target as a leaf. The value is
// still exact, but the tree is no longer perfect: that leaf sits above its
// siblings.
type LeafStrategy struct{}

func (s *LeafStrategy) Name() string { return "leaf" }

func (s *LeafStrategy) Resolve(_ Builder, target float64, _ int) expr.Node {
	return &expr.Leaf{Val: target}
}
