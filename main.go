package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/wildfunctions/backsolve/pkg/engine"
	"github.com/wildfunctions/backsolve/pkg/equation"
	"github.com/wildfunctions/backsolve/pkg/fallback"
	"github.com/wildfunctions/backsolve/pkg/pool"
	"github.com/wildfunctions/backsolve/pkg/server"
	"github.com/wildfunctions/backsolve/pkg/worksheet"
)

func main() {
	cfg := engine.DefaultConfig()
	outdir := "."
	configPath := ""
	quiz := false
	serveAddr := ""

	difficulties := make([]string, len(equation.Difficulties))
	for i, d := range equation.Difficulties {
		difficulties[i] = d.String()
	}

	flag.StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "difficulty ("+strings.Join(difficulties, ", ")+")")
	flag.IntVar(&cfg.Count, "count", cfg.Count, "number of equations")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	flag.StringVar(&cfg.Pool, "pool", cfg.Pool, "operator pool ("+strings.Join(pool.Names(), ", ")+")")
	flag.StringVar(&cfg.Fallback, "fallback", cfg.Fallback, "fallback for failed products ("+strings.Join(fallback.Names(), ", ")+")")
	flag.UintVar(&cfg.Precision, "precision", cfg.Precision, "decimals per factor when inverting products")
	flag.BoolVar(&cfg.LegacySubtract, "legacy-subtract", cfg.LegacySubtract, "subtract nodes evaluate to the negated target")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format ("+strings.Join(engine.Formats, ", ")+")")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every generated equation")
	flag.StringVar(&outdir, "outdir", outdir, "output directory for latex and pdf files")
	flag.StringVar(&configPath, "config", configPath, "YAML config file; explicit flags override it")
	flag.BoolVar(&quiz, "quiz", quiz, "ask the equations interactively on stdin")
	flag.StringVar(&serveAddr, "serve", serveAddr, "serve the HTTP quiz API on this address, e.g. :8080")
	flag.Parse()

	if configPath != "" {
		fileCfg, err := engine.LoadConfig(configPath, engine.DefaultConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		flagCfg := cfg
		cfg = fileCfg
		flag.Visit(func(f *flag.Flag) { overrideFromFlag(&cfg, flagCfg, f.Name) })
	}

	if err := os.MkdirAll(outdir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output dir: %v\n", err)
		os.Exit(1)
	}
	cfg.OutDir = outdir

	e, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case serveAddr != "":
		serve(e, serveAddr)
	case quiz:
		if _, err := e.Quiz(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := write(e.Run(), cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// overrideFromFlag copies the field behind an explicitly set flag from src
// into dst, so flags win over the config file.
func overrideFromFlag(dst *engine.Config, src engine.Config, name string) {
	switch name {
	case "difficulty":
		dst.Difficulty = src.Difficulty
	case "count":
		dst.Count = src.Count
	case "seed":
		dst.Seed = src.Seed
	case "pool":
		dst.Pool = src.Pool
	case "fallback":
		dst.Fallback = src.Fallback
	case "precision":
		dst.Precision = src.Precision
	case "legacy-subtract":
		dst.LegacySubtract = src.LegacySubtract
	case "format":
		dst.Format = src.Format
	case "verbose":
		dst.Verbose = src.Verbose
	}
}

func write(report engine.Report, cfg engine.Config) error {
	base := filepath.Join(cfg.OutDir, fmt.Sprintf("worksheet_%s_%d", cfg.Difficulty, report.Seed))
	switch cfg.Format {
	case "json":
		return engine.WriteJSON(os.Stdout, report)
	case "latex":
		f, err := os.Create(base + ".tex")
		if err != nil {
			return err
		}
		defer f.Close()
		engine.WriteLatex(f, report)
		fmt.Fprintf(os.Stderr, "Wrote %s.tex\n", base)
		return nil
	case "pdf":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := worksheet.NewGenerator(worksheet.DefaultConfig()).WriteFile(ctx, report, base+".pdf"); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s.pdf\n", base)
		return nil
	default:
		engine.WriteText(os.Stdout, report)
		return nil
	}
}

func serve(e *engine.Engine, addr string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(e.Generator(), server.DefaultCapacity)
	srv.Run(addr)

	<-ctx.Done()
	fmt.Fprintln(os.Stderr, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
	}
}
