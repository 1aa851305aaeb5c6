// Package worksheet renders a generated report as a printable PDF with the
// problems on the first page and the answer key after it.
package worksheet

import (
	"context"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wildfunctions/backsolve/pkg/engine"
)

type Config struct {
	PageSize   string
	MarginsMM  float64
	FontFamily string
}

// DefaultConfig returns an A4 layout in the built-in Helvetica font.
func DefaultConfig() Config {
	return Config{
		PageSize:   "A4",
		MarginsMM:  20,
		FontFamily: "Helvetica",
	}
}

type Generator struct {
	cfg Config
}

func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg}
}

// Title returns the worksheet heading for r.
func Title(r engine.Report) string {
	return fmt.Sprintf("%s Equations", cases.Title(language.English).String(r.Config.Difficulty))
}

func (g *Generator) build(ctx context.Context, r engine.Report) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "mm", g.cfg.PageSize, "")
	pdf.SetMargins(g.cfg.MarginsMM, g.cfg.MarginsMM, g.cfg.MarginsMM)
	// The core fonts are cp1252; × and ÷ both exist there.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := Title(r)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	// ---------- title ----------
	pdf.SetFont(g.cfg.FontFamily, "B", 22)
	pdf.CellFormat(0, 15, title, "", 1, "C", false, 0, "")
	pdf.SetFont(g.cfg.FontFamily, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Seed %d", r.Seed), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	// ---------- problems ----------
	pdf.SetFont(g.cfg.FontFamily, "", 14)
	for _, e := range r.Equations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pdf.MultiCell(0, 8, tr(fmt.Sprintf("%d. %s = _____", e.Index, e.Text)), "", "L", false)
		pdf.Ln(2)
	}

	pdf.AddPage()
	pdf.SetFont(g.cfg.FontFamily, "B", 22)
	pdf.CellFormat(0, 15, title+" Answer Key", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	// ---------- answers ----------
	pdf.SetFont(g.cfg.FontFamily, "", 14)
	for _, e := range r.Equations {
		pdf.MultiCell(0, 8, fmt.Sprintf("%d. %s", e.Index, engine.FormatAnswer(e.Answer)), "", "L", false)
	}

	return pdf, pdf.Error()
}

// Write renders r as PDF to w.
func (g *Generator) Write(ctx context.Context, r engine.Report, w io.Writer) error {
	pdf, err := g.build(ctx, r)
	if err != nil {
		return fmt.Errorf("building worksheet: %w", err)
	}
	return pdf.Output(w)
}

// WriteFile renders r as PDF into the file at path.
func (g *Generator) WriteFile(ctx context.Context, r engine.Report, path string) error {
	pdf, err := g.build(ctx, r)
	if err != nil {
		return fmt.Errorf("building worksheet: %w", err)
	}
	return pdf.OutputFileAndClose(path)
}
