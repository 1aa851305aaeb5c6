package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wildfunctions/backsolve/pkg/equation"
)

// Grade parses a typed answer and compares it with v. Input that does not
// parse as a number is graded incorrect and never reaches CompareValue.
func Grade(v equation.Value, answer string) bool {
	candidate, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err != nil {
		return false
	}
	return v.CompareValue(candidate)
}

// Score is the outcome of an interactive quiz.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Quiz asks cfg.Count questions on w and reads one answer per line from r.
// It stops early when r is exhausted.
func (e *Engine) Quiz(r io.Reader, w io.Writer) (Score, error) {
	var score Score
	in := bufio.NewScanner(r)
	for i := 1; i <= e.cfg.Count; i++ {
		v := e.Next()
		fmt.Fprintf(w, "[%d/%d] %s = ", i, e.cfg.Count, v)
		if !in.Scan() {
			fmt.Fprintln(w)
			break
		}
		score.Total++
		if Grade(v, in.Text()) {
			score.Correct++
			fmt.Fprintln(w, "correct")
		} else {
			fmt.Fprintf(w, "incorrect, answer was %s\n", FormatAnswer(v.CalcValue()))
		}
	}
	if err := in.Err(); err != nil {
		return score, fmt.Errorf("reading answers: %w", err)
	}
	fmt.Fprintf(w, "Score: %d/%d\n", score.Correct, score.Total)
	return score, nil
}
