// Package batch drives the solver over a file of newline-delimited dense
// puzzle strings, silencing per-step logging and reporting aggregate
// timing and per-technique statistics (spec.md §4.12).
package batch

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"sudoku-solver/internal/parse"
	"sudoku-solver/internal/puzzle"
	"sudoku-solver/internal/render"
	"sudoku-solver/internal/solver"
)

// Result summarizes one batch run.
type Result struct {
	Filename      string
	TotalCount    int
	Unsolved      []string
	TimeTaken     time.Duration
	HighTierNames []string
	BranchesUsed  int
	TechniqueText []string
	TotalUses     int
	TotalUsesAvg  float64
}

// Run solves every puzzle string in contents (one per non-empty line)
// using s, silencing verbose output regardless of what callers configured
// on s's puzzles. Solver technique statistics are reset before the run so
// the report reflects only this batch.
func Run(s *solver.Solver, filename, contents string) (Result, error) {
	var lines []string
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return Result{}, errors.Errorf("batch file %q has no puzzles", filename)
	}

	s.ResetStats()

	var unsolved []string
	start := time.Now()
	for _, line := range lines {
		size, grid, err := parse.String(line)
		if err != nil {
			return Result{}, errors.Wrapf(err, "batch file %q", filename)
		}
		p, err := puzzle.New(size, grid)
		if err != nil {
			return Result{}, errors.Wrapf(err, "batch file %q", filename)
		}
		p.Verbose = false

		if !s.Solve(p) {
			unsolved = append(unsolved, render.DigitString(p))
		}
	}
	elapsed := time.Since(start)

	var totalUses int
	var totalUsesTime int64
	for _, st := range s.Stats() {
		totalUses += st.TotalUses
		totalUsesTime += st.TotalTime
	}
	totalUsesAvg := 0.0
	if totalUses > 0 {
		totalUsesAvg = float64(totalUsesTime) / float64(totalUses) / 1e3
	}

	return Result{
		Filename:      filename,
		TotalCount:    len(lines),
		Unsolved:      unsolved,
		TimeTaken:     elapsed,
		HighTierNames: s.HighTierNames(),
		BranchesUsed:  s.BranchesUsed(),
		TechniqueText: techniqueLines(s),
		TotalUses:     totalUses,
		TotalUsesAvg:  totalUsesAvg,
	}, nil
}

func techniqueLines(s *solver.Solver) []string {
	var lines []string
	for _, st := range s.Stats() {
		pct := 0.0
		avgMicros := 0.0
		if st.TotalUses > 0 {
			pct = float64(st.SuccessfulUses) / float64(st.TotalUses) * 100
			avgMicros = st.AvgNanosPerUse() / 1e3
		}
		lines = append(lines, fmt.Sprintf("%s: %d/%d uses (%.1f%%), took %.2fs (%.2fµs per)",
			st.Name, st.SuccessfulUses, st.TotalUses, pct, float64(st.TotalTime)/1e9, avgMicros))
	}
	return lines
}

// Report renders r in the multi-line format emitted by the batch driver
// (spec.md §6): a header naming the batch file and the high-priority
// techniques, a summary line, one line per technique, a bruteforce-usage
// line, and a total-uses line. The summary line is colored green when
// every puzzle solved and red otherwise.
func Report(r Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", r.Filename, strings.Join(r.HighTierNames, ", "))

	unsolvedRate := float64(len(r.Unsolved)) / float64(r.TotalCount)
	msPerPuzzle := r.TimeTaken.Seconds() / float64(r.TotalCount) * 1000
	summary := fmt.Sprintf("Total: %d, unsolved: %d (%.1f%%), took %.2fs (%.2fms per)",
		r.TotalCount, len(r.Unsolved), unsolvedRate*100, r.TimeTaken.Seconds(), msPerPuzzle)

	if len(r.Unsolved) == 0 {
		fmt.Fprintln(&b, color.GreenString(summary))
	} else {
		fmt.Fprintln(&b, color.RedString(summary))
	}

	for _, line := range r.TechniqueText {
		fmt.Fprintln(&b, line)
	}

	fmt.Fprintf(&b, "Used bruteforce %d times\n", r.BranchesUsed)
	fmt.Fprintf(&b, "TOTAL USES: %d, %.2fµs per\n", r.TotalUses, r.TotalUsesAvg)

	return b.String()
}
