package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/wildfunctions/backsolve/pkg/equation"
)

// EquationReport summarizes one generated equation.
type EquationReport struct {
	Index      int                 `json:"index"`
	Text       string              `json:"text"`
	LaTeX      string              `json:"latex"`
	Answer     float64             `json:"answer"`
	Depth      int                 `json:"depth"`
	Difficulty equation.Difficulty `json:"difficulty"`
}

// Report summarizes an entire run.
type Report struct {
	Config      Config           `json:"config"`
	Seed        int64            `json:"seed"`
	GeneratedAt time.Time        `json:"generated_at"`
	Equations   []EquationReport `json:"equations"`
}

// FormatAnswer prints an answer rounded to four decimals with trailing zeros
// dropped, e.g. 12.300000000000001 becomes "12.3".
func FormatAnswer(v float64) string {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// WriteText writes the worksheet followed by its answer key.
func WriteText(w io.Writer, r Report) {
	fmt.Fprintf(w, "========== %s worksheet (seed %d) ==========\n",
		strings.ToUpper(r.Config.Difficulty), r.Seed)
	for _, e := range r.Equations {
		fmt.Fprintf(w, "%3d. %s = ____\n", e.Index, e.Text)
	}
	fmt.Fprintln(w, "\n--- Answer Key ---")
	for _, e := range r.Equations {
		fmt.Fprintf(w, "%3d. %s\n", e.Index, FormatAnswer(e.Answer))
	}
}

// WriteJSON writes the report as JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// latexEscape escapes underscores and other special chars for LaTeX text mode.
func latexEscape(s string) string {
	return strings.ReplaceAll(s, "_", `\_`)
}

// WriteLatex writes a compilable LaTeX document with the equations and an
// answer key on a separate page.
func WriteLatex(w io.Writer, r Report) {
	fmt.Fprintln(w, `\documentclass{article}`)
	fmt.Fprintln(w, `\usepackage{amsmath}`)
	fmt.Fprintln(w, `\usepackage{geometry}`)
	fmt.Fprintln(w, `\geometry{margin=1in}`)
	fmt.Fprintf(w, "\\title{Worksheet --- \\texttt{%s}}\n", latexEscape(r.Config.Difficulty))
	fmt.Fprintf(w, "\\date{%s}\n", r.GeneratedAt.Format("2006-01-02"))
	fmt.Fprintln(w, `\begin{document}`)
	fmt.Fprintln(w, `\maketitle`)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "\\noindent Pool: \\texttt{%s}, Fallback: \\texttt{%s}, Seed: %d\n\n",
		latexEscape(r.Config.Pool), latexEscape(r.Config.Fallback), r.Seed)

	fmt.Fprintln(w, `\begin{enumerate}`)
	for _, e := range r.Equations {
		fmt.Fprintf(w, "  \\item $%s = \\underline{\\hspace{2cm}}$\n", e.LaTeX)
	}
	fmt.Fprintln(w, `\end{enumerate}`)

	fmt.Fprintln(w, `\newpage`)
	fmt.Fprintln(w, `\section*{Answer Key}`)
	fmt.Fprintln(w, `\begin{enumerate}`)
	for _, e := range r.Equations {
		fmt.Fprintf(w, "  \\item $%s$\n", FormatAnswer(e.Answer))
	}
	fmt.Fprintln(w, `\end{enumerate}`)
	fmt.Fprintln(w, `\end{document}`)
}
