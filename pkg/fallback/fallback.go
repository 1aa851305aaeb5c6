// Package fallback resolves tree nodes whose multiplication could not be
// inverted, either because the target scales to zero or because it does not
// sit on the factorization precision grid.
package fallback

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wildfunctions/backsolve/pkg/expr"
	"github.com/wildfunctions/backsolve/pkg/pool"
)

// MaxPrecision is the widest decimal precision any strategy will factor at.
const MaxPrecision = 4

// Builder is the part of the tree builder a strategy may call back into.
type Builder interface {
	Rng() *rand.Rand
	Pool() pool.Pool
	Precision() uint
	// Node inverts op against target and builds both children one level
	// below depth. ok is false when op cannot be inverted for target.
	Node(op expr.BinaryOp, target float64, depth int, precision uint) (n expr.Node, ok bool)
}

// Strategy decides what a node becomes after its multiplication failed.
// Resolve must always return a tree that evaluates to target.
type Strategy interface {
	Name() string
	Resolve(b Builder, target float64, depth int) expr.Node
}

var registry = map[string]func() Strategy{}

// Register adds a strategy constructor to the registry.
func Register(name string, constructor func() Strategy) {
	registry[name] = constructor
}

// Get returns a strategy by name.
func Get(name string) (Strategy, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown fallback: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Default is the strategy used when none is configured.
const Default = "reoperator"
