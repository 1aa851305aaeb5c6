package pool

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wildfunctions/backsolve/pkg/expr"
)

// Pool provides the operations the builder may place at internal nodes.
type Pool interface {
	Name() string
	Ops() []expr.BinaryOp
	RandomOp(rng *rand.Rand) expr.BinaryOp
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pool: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// OpSet is a Pool drawing uniformly from a fixed list of operations.
type OpSet struct {
	name string
	ops  []expr.BinaryOp
}

// New returns a pool that draws uniformly from ops. It panics on an empty
// list, since a builder could never place an internal node.
func New(name string, ops ...expr.BinaryOp) *OpSet {
	if len(ops) == 0 {
		panic("pool: empty operation set")
	}
	return &OpSet{name: name, ops: append([]expr.BinaryOp(nil), ops...)}
}

func (s *OpSet) Name() string { return s.name }

func (s *OpSet) Ops() []expr.BinaryOp {
	return append([]expr.BinaryOp(nil), s.ops...)
}

func (s *OpSet) RandomOp(rng *rand.Rand) expr.BinaryOp {
	return s.ops[rng.Intn(len(s.ops))]
}

// Without returns the operations of p other than the excluded ones.
func Without(p Pool, excluded ...expr.BinaryOp) []expr.BinaryOp {
	var out []expr.BinaryOp
	for _, op := range p.Ops() {
		keep := true
		for _, ex := range excluded {
			if op == ex {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, op)
		}
	}
	return out
}
