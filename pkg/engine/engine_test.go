package engine

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/backsolve/pkg/equation"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Count = 8
	cfg.Seed = 42
	return cfg
}

func newEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(cfg)
	require.NoError(t, err)
	e.SetLog(io.Discard)
	return e
}

func TestEngine_SmallRun(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty = "complex"
	e := newEngine(t, cfg)

	report := e.Run()
	require.Len(t, report.Equations, cfg.Count)
	assert.Equal(t, int64(42), report.Seed)
	for i, eq := range report.Equations {
		assert.Equal(t, i+1, eq.Index)
		assert.NotEmpty(t, eq.Text)
		assert.NotEmpty(t, eq.LaTeX)
		assert.Equal(t, equation.Complex, eq.Difficulty)
		assert.Contains(t, []int{2, 3}, eq.Depth)
	}
}

func TestEngine_Deterministic(t *testing.T) {
	a := newEngine(t, testConfig()).Run()
	b := newEngine(t, testConfig()).Run()
	for i := range a.Equations {
		assert.Equal(t, a.Equations[i].Text, b.Equations[i].Text)
		assert.Equal(t, a.Equations[i].Answer, b.Equations[i].Answer)
	}
}

func TestEngine_RandomSeed(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0
	e := newEngine(t, cfg)
	assert.NotZero(t, e.Seed())
}

func TestEngine_Invalid(t *testing.T) {
	cases := map[string]func(*Config){
		"difficulty": func(c *Config) { c.Difficulty = "nonexistent" },
		"pool":       func(c *Config) { c.Pool = "nonexistent" },
		"fallback":   func(c *Config) { c.Fallback = "nonexistent" },
		"count":      func(c *Config) { c.Count = 0 },
		"precision":  func(c *Config) { c.Precision = 9 },
		"format":     func(c *Config) { c.Format = "docx" },
		"tier name":  func(c *Config) { c.Tiers = map[string]equation.DepthRange{"legendary": {Min: 1, Max: 2}} },
		"tier range": func(c *Config) { c.Tiers = map[string]equation.DepthRange{"medium": {Min: 2, Max: 1}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig()
			mutate(&cfg)
			_, err := New(cfg)
			assert.Error(t, err)
		})
	}
}

func TestEngine_SimpleDifficulty(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty = "simple"
	report := newEngine(t, cfg).Run()
	for _, eq := range report.Equations {
		assert.Equal(t, equation.Simple, eq.Difficulty)
		assert.Equal(t, float64(int64(eq.Answer)), eq.Answer)
	}
}

func TestEngine_VerboseLogs(t *testing.T) {
	cfg := testConfig()
	cfg.Verbose = true
	e := newEngine(t, cfg)
	var buf bytes.Buffer
	e.SetLog(&buf)
	e.Run()
	assert.Contains(t, buf.String(), "Generating 8 medium equations")
	assert.Contains(t, buf.String(), "[8] depth 1")
}

func TestWriteText(t *testing.T) {
	report := newEngine(t, testConfig()).Run()
	var buf bytes.Buffer
	WriteText(&buf, report)
	out := buf.String()
	assert.Contains(t, out, "MEDIUM worksheet (seed 42)")
	assert.Contains(t, out, "--- Answer Key ---")
	assert.Contains(t, out, report.Equations[0].Text)
	assert.Equal(t, 2*len(report.Equations), strings.Count(out, ". "))
}

func TestWriteJSON(t *testing.T) {
	report := newEngine(t, testConfig()).Run()
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, report))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.Seed, decoded.Seed)
	require.Len(t, decoded.Equations, len(report.Equations))
	assert.Equal(t, report.Equations[3].Text, decoded.Equations[3].Text)
	assert.Equal(t, equation.Medium, decoded.Equations[3].Difficulty)
	assert.Contains(t, buf.String(), `"difficulty": "medium"`)
}

func TestWriteLatex(t *testing.T) {
	report := newEngine(t, testConfig()).Run()
	var buf bytes.Buffer
	WriteLatex(&buf, report)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `\documentclass{article}`))
	assert.Contains(t, out, `\section*{Answer Key}`)
	assert.Contains(t, out, report.Equations[0].LaTeX)
	assert.True(t, strings.HasSuffix(out, "\\end{document}\n"))
}

func TestFormatAnswer(t *testing.T) {
	assert.Equal(t, "12.3", FormatAnswer(12.300000000000001))
	assert.Equal(t, "-5", FormatAnswer(-4.999999999))
	assert.Equal(t, "0", FormatAnswer(-0.00001))
	assert.Equal(t, "1.2346", FormatAnswer(1.23456))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backsolve.yaml")
	yml := `
difficulty: complex
count: 3
pool: additive
tiers:
  complex:
    min: 3
    max: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	base := DefaultConfig()
	base.Tiers = map[string]equation.DepthRange{"medium": {Min: 1, Max: 3}}
	cfg, err := LoadConfig(path, base)
	require.NoError(t, err)

	assert.Equal(t, "complex", cfg.Difficulty)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, "additive", cfg.Pool)
	assert.Equal(t, base.Fallback, cfg.Fallback, "absent keys keep their default")
	assert.Equal(t, equation.DepthRange{Min: 3, Max: 5}, cfg.Tiers["complex"])
	assert.Equal(t, equation.DepthRange{Min: 1, Max: 3}, cfg.Tiers["medium"])
	assert.NotContains(t, base.Tiers, "complex", "base must not be mutated")

	cfg.Seed = 9
	e := newEngine(t, cfg)
	for _, eq := range e.Run().Equations {
		assert.Contains(t, []int{3, 4}, eq.Depth)
		assert.NotContains(t, eq.Text, "×")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), DefaultConfig())
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: [1, 2"), 0o644))
	_, err = LoadConfig(path, DefaultConfig())
	assert.Error(t, err)
}
