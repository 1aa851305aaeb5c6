package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/backsolve/pkg/builder"
	"github.com/wildfunctions/backsolve/pkg/equation"
	"github.com/wildfunctions/backsolve/pkg/fallback"
	"github.com/wildfunctions/backsolve/pkg/pool"
)

// Config holds all parameters for a worksheet run.
type Config struct {
	Difficulty     string                         `yaml:"difficulty" json:"difficulty"`
	Count          int                            `yaml:"count" json:"count"`
	Seed           int64                          `yaml:"seed" json:"seed"`
	Pool           string                         `yaml:"pool" json:"pool"`
	Fallback       string                         `yaml:"fallback" json:"fallback"`
	Precision      uint                           `yaml:"precision" json:"precision"`
	LegacySubtract bool                           `yaml:"legacy_subtract" json:"legacy_subtract"`
	Format         string                         `yaml:"format" json:"format"` // text, json, latex or pdf
	OutDir         string                         `yaml:"outdir" json:"outdir,omitempty"`
	Verbose        bool                           `yaml:"verbose" json:"verbose"`
	Tiers          map[string]equation.DepthRange `yaml:"tiers" json:"tiers,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Difficulty: equation.Medium.String(),
		Count:      10,
		Seed:       0, // 0 = random
		Pool:       pool.Default,
		Fallback:   fallback.Default,
		Precision:  builder.DefaultPrecision,
		Format:     "text",
	}
}

// LoadConfig overlays the YAML file at path onto base. Keys absent from the
// file keep their value from base.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config: %w", err)
	}
	cfg := base
	if base.Tiers != nil {
		cfg.Tiers = make(map[string]equation.DepthRange, len(base.Tiers))
		for k, v := range base.Tiers {
			cfg.Tiers[k] = v
		}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// tiers converts the named depth ranges of the config.
func (c Config) tiers() (map[equation.Difficulty]equation.DepthRange, error) {
	out := make(map[equation.Difficulty]equation.DepthRange, len(c.Tiers))
	for name, r := range c.Tiers {
		d, err := equation.ParseDifficulty(name)
		if err != nil {
			return nil, fmt.Errorf("tiers: %w", err)
		}
		out[d] = r
	}
	return out, nil
}
