package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/backsolve/pkg/expr"
	"github.com/wildfunctions/backsolve/pkg/fallback"
	"github.com/wildfunctions/backsolve/pkg/pool"
	"github.com/wildfunctions/backsolve/pkg/sample"
)

const selfTolerance = 1e-6

func newBuilder(seed int64, opts ...Option) *Builder {
	return New(rand.New(rand.NewSource(seed)), opts...)
}

func mustFallback(t *testing.T, name string) fallback.Strategy {
	t.Helper()
	s, err := fallback.Get(name)
	require.NoError(t, err)
	return s
}

func TestBuildLeafIdentity(t *testing.T) {
	b := newBuilder(1)
	for _, target := range []float64{0, 7, -3.3, 12.345678} {
		n := b.Build(target, 0)
		require.IsType(t, &expr.Leaf{}, n)
		assert.Equal(t, target, n.Eval())
	}
}

func TestInvertAddAndDivide(t *testing.T) {
	b := newBuilder(2)
	for i := 0; i < 500; i++ {
		target := sample.SignedTenth(b.Rng())
		for _, op := range []expr.BinaryOp{expr.OpAdd, expr.OpDiv} {
			left, right, ok := b.Invert(op, target)
			require.True(t, ok)
			n := &expr.BinaryNode{Op: op, Left: &expr.Leaf{Val: left}, Right: &expr.Leaf{Val: right}}
			assert.InDelta(t, target, n.Eval(), 1e-9, "op %v target %v", op, target)
		}
	}
}

func TestInvertDivideNeverZeroDivisor(t *testing.T) {
	b := newBuilder(3)
	for i := 0; i < 5000; i++ {
		_, right, ok := b.Invert(expr.OpDiv, 5.0)
		require.True(t, ok)
		require.NotZero(t, right)
	}
}

func TestDivideScenario(t *testing.T) {
	// right = 0.3, target = 5.0 gives left = 1.5.
	left := 0.3 * 5.0
	assert.InDelta(t, 1.5, left, 1e-12)

	n := &expr.BinaryNode{Op: expr.OpDiv, Left: &expr.Leaf{Val: 1.5}, Right: &expr.Leaf{Val: 0.3}}
	assert.InDelta(t, 5.0, n.Eval(), 1e-9)
	assert.Equal(t, "(1.5)÷(0.3)", n.String())
}

func TestInvertSubtract(t *testing.T) {
	b := newBuilder(4)
	legacy := newBuilder(4, WithLegacySubtract(true))
	for i := 0; i < 200; i++ {
		target := sample.SignedTenth(b.Rng())

		left, right, ok := b.Invert(expr.OpSub, target)
		require.True(t, ok)
		assert.InDelta(t, target, left-right, 1e-9)

		left, right, ok = legacy.Invert(expr.OpSub, target)
		require.True(t, ok)
		assert.InDelta(t, -target, left-right, 1e-9)
	}
}

func TestInvertMultiply(t *testing.T) {
	b := newBuilder(5)
	left, right, ok := b.Invert(expr.OpMul, 12.0)
	require.True(t, ok)
	assert.InDelta(t, 12.0, left*right, 1e-9)

	_, _, ok = b.Invert(expr.OpMul, 0)
	assert.False(t, ok, "zero has no factor pairs")

	_, _, ok = b.Invert(expr.OpMul, 1.555)
	assert.False(t, ok, "1.555 is off the one-decimal factor grid")

	wide := newBuilder(5, WithPrecision(2))
	left, right, ok = wide.Invert(expr.OpMul, 1.555)
	require.True(t, ok)
	assert.InDelta(t, 1.555, left*right, 1e-9)
}

func TestBuildSelfConsistent(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		b := newBuilder(seed)
		for depth := 0; depth <= 4; depth++ {
			target := sample.SignedTenth(b.Rng())
			n := b.Build(target, depth)
			require.True(t, expr.Finite(n), "seed %d depth %d: %s", seed, depth, n)
			assert.InDelta(t, target, n.Eval(), selfTolerance, "seed %d depth %d: %s", seed, depth, n)
		}
	}
}

func TestBuildDepthUniformity(t *testing.T) {
	for _, name := range []string{"reoperator", "widen"} {
		t.Run(name, func(t *testing.T) {
			for seed := int64(0); seed < 30; seed++ {
				b := newBuilder(seed, WithFallback(mustFallback(t, name)))
				for depth := 1; depth <= 4; depth++ {
					n := b.Build(sample.SignedTenth(b.Rng()), depth)
					for _, d := range expr.LeafDepths(n) {
						require.Equal(t, depth, d, "seed %d: %s", seed, n)
					}
					assert.Equal(t, depth, n.Depth())
					assert.Equal(t, 1<<(depth+1)-1, n.NodeCount())
				}
			}
		})
	}
}

func TestFallbacksResolveZeroUnderMultiplyOnly(t *testing.T) {
	mulOnly := pool.New("mul", expr.OpMul)
	for _, name := range fallback.Names() {
		t.Run(name, func(t *testing.T) {
			b := newBuilder(11, WithPool(mulOnly), WithFallback(mustFallback(t, name)))
			for depth := 1; depth <= 3; depth++ {
				n := b.Build(0, depth)
				assert.InDelta(t, 0, n.Eval(), selfTolerance, "%s", n)
			}
		})
	}
}

func TestReoperatorAvoidsMultiply(t *testing.T) {
	b := newBuilder(12, WithPool(pool.New("mul", expr.OpMul)))
	n := b.Build(0, 1)
	root, ok := n.(*expr.BinaryNode)
	require.True(t, ok)
	assert.Equal(t, expr.OpAdd, root.Op)
}

func TestWidenKeepsMultiply(t *testing.T) {
	b := newBuilder(13, WithPool(pool.New("mul", expr.OpMul)), WithFallback(mustFallback(t, "widen")))
	n := b.Build(1.555, 1)
	root, ok := n.(*expr.BinaryNode)
	require.True(t, ok)
	assert.Equal(t, expr.OpMul, root.Op)
	assert.InDelta(t, 1.555, n.Eval(), 1e-9)
}

func TestLeafFallbackCutsBranch(t *testing.T) {
	b := newBuilder(14, WithPool(pool.New("mul", expr.OpMul)), WithFallback(mustFallback(t, "leaf")))
	n := b.Build(0, 2)
	assert.Equal(t, &expr.Leaf{Val: 0}, n)
}

func TestLegacySubtractTree(t *testing.T) {
	b := newBuilder(15, WithPool(pool.New("sub", expr.OpSub)), WithLegacySubtract(true))
	n := b.Build(7.0, 1)
	assert.InDelta(t, -7.0, n.Eval(), 1e-9)

	fixed := newBuilder(15, WithPool(pool.New("sub", expr.OpSub)))
	n = fixed.Build(7.0, 1)
	assert.InDelta(t, 7.0, n.Eval(), 1e-9)
}

func TestSameSeedSameTree(t *testing.T) {
	a := newBuilder(77)
	b := newBuilder(77)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Build(12.5, 3).String(), b.Build(12.5, 3).String())
	}
}

func TestPoolRestrictsOperators(t *testing.T) {
	additive, err := pool.Get("additive")
	require.NoError(t, err)
	b := newBuilder(16, WithPool(additive))
	for i := 0; i < 50; i++ {
		counts := expr.CountOps(b.Build(sample.SignedTenth(b.Rng()), 3))
		assert.Zero(t, counts[expr.OpMul])
		assert.Zero(t, counts[expr.OpDiv])
	}
}
