package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/wildfunctions/backsolve/pkg/builder"
	"github.com/wildfunctions/backsolve/pkg/equation"
	"github.com/wildfunctions/backsolve/pkg/fallback"
	"github.com/wildfunctions/backsolve/pkg/pool"
)

// Formats lists the output formats a run can be written in.
var Formats = []string{"text", "json", "latex", "pdf"}

var (
	errCount     = errors.New("count must be positive")
	errPrecision = fmt.Errorf("precision must be between 1 and %d", fallback.MaxPrecision)
)

// Engine generates worksheets of equations.
type Engine struct {
	cfg        Config
	difficulty equation.Difficulty
	generator  *equation.Generator
	seed       int64
	log        io.Writer
}

// New creates a new engine from the given config.
func New(cfg Config) (*Engine, error) {
	d, err := equation.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return nil, err
	}
	p, err := pool.Get(cfg.Pool)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, pool.Names())
	}
	s, err := fallback.Get(cfg.Fallback)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, fallback.Names())
	}
	if cfg.Count <= 0 {
		return nil, errCount
	}
	if cfg.Precision < 1 || cfg.Precision > fallback.MaxPrecision {
		return nil, errPrecision
	}
	if !validFormat(cfg.Format) {
		return nil, fmt.Errorf("unknown format: %s (available: %v)", cfg.Format, Formats)
	}
	tiers, err := cfg.tiers()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	g, err := equation.NewGenerator(rand.New(rand.NewSource(seed)), tiers,
		builder.WithPool(p),
		builder.WithFallback(s),
		builder.WithPrecision(cfg.Precision),
		builder.WithLegacySubtract(cfg.LegacySubtract),
	)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:        cfg,
		difficulty: d,
		generator:  g,
		seed:       seed,
		log:        os.Stderr,
	}, nil
}

func validFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// SetLog redirects progress output, stderr by default.
func (e *Engine) SetLog(w io.Writer) { e.log = w }

// Seed returns the seed actually used, which differs from the configured
// one when that was 0.
func (e *Engine) Seed() int64 { return e.seed }

// Difficulty returns the configured tier.
func (e *Engine) Difficulty() equation.Difficulty { return e.difficulty }

// Generator exposes the engine's equation generator.
func (e *Engine) Generator() *equation.Generator { return e.generator }

// Next returns one equation of the configured difficulty.
func (e *Engine) Next() equation.Value {
	return e.generator.New(e.difficulty)
}

// Run generates cfg.Count equations and returns the worksheet report.
func (e *Engine) Run() Report {
	fmt.Fprintf(e.log, "Generating %d %s equations, pool %s, fallback %s, seed %d\n",
		e.cfg.Count, e.difficulty, e.cfg.Pool, e.cfg.Fallback, e.seed)

	report := Report{
		Config:      e.cfg,
		Seed:        e.seed,
		GeneratedAt: time.Now().UTC(),
		Equations:   make([]EquationReport, 0, e.cfg.Count),
	}
	for i := 1; i <= e.cfg.Count; i++ {
		v := e.Next()
		er := EquationReport{
			Index:      i,
			Text:       v.String(),
			LaTeX:      v.LaTeX(),
			Answer:     v.CalcValue(),
			Depth:      v.Depth(),
			Difficulty: v.Difficulty(),
		}
		if e.cfg.Verbose {
			fmt.Fprintf(e.log, "[%d] depth %d | %s = %.4f\n", i, er.Depth, er.Text, er.Answer)
		}
		report.Equations = append(report.Equations, er)
	}
	return report
}
