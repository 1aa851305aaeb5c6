package equation

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty selects how an equation is generated.
type Difficulty int

const (
	// Simple is a flat integer equation with two operands.
	Simple Difficulty = iota
	// Medium is a backwards-built tree of shallow depth.
	Medium
	// Complex is a backwards-built tree of greater depth.
	Complex
)

var difficultyNames = map[Difficulty]string{
	Simple:  "simple",
	Medium:  "medium",
	Complex: "complex",
}

// Difficulties lists every tier from easiest to hardest.
var Difficulties = []Difficulty{Simple, Medium, Complex}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty maps a case-insensitive name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range difficultyNames {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty: %q", s)
}

// MarshalText implements encoding.TextMarshaler, so tiers read naturally in
// JSON and YAML.
func (d Difficulty) MarshalText() ([]byte, error) {
	if _, ok := difficultyNames[d]; !ok {
		return nil, fmt.Errorf("unknown difficulty: %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ErrEmptyDepthRange is returned for a depth range that contains no depth.
var ErrEmptyDepthRange = errors.New("depth range is empty")

// DepthRange is the half-open range [Min, Max) a tree depth is drawn from.
type DepthRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Validate checks that the range holds at least one non-negative depth.
func (r DepthRange) Validate() error {
	if r.Min < 0 {
		return fmt.Errorf("depth range [%d, %d): negative minimum", r.Min, r.Max)
	}
	if r.Max <= r.Min {
		return fmt.Errorf("depth range [%d, %d): %w", r.Min, r.Max, ErrEmptyDepthRange)
	}
	return nil
}

// DefaultTiers returns the depth ranges of the tree-backed tiers.
func DefaultTiers() map[Difficulty]DepthRange {
	return map[Difficulty]DepthRange{
		Medium:  {Min: 1, Max: 2},
		Complex: {Min: 2, Max: 4},
	}
}
