// Package technique defines the common Technique interface every logical
// deduction rule implements (spec.md §4.3), plus the timing/counting
// wrapper every concrete technique is run through.
package technique

import (
	"fmt"
	"time"

	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzle"
)

// Technique is one human-style deduction rule. Apply mutates p (assigning
// values or eliminating candidates) and reports whether it made progress.
type Technique interface {
	Name() string
	Apply(p *puzzle.Puzzle) bool
}

// Tier is a technique's priority bucket in the solve loop (spec.md §4.11).
type Tier int

const (
	TierHigh Tier = iota
	TierNormal
	TierLow
)

// Entry pairs a technique with its tier and its running statistics.
type Entry struct {
	Tech  Technique
	Tier  Tier
	Stats *core.TechniqueStats
}

// Run applies a technique wrapped with the check-if-solved guard and stats
// bookkeeping that base_tech.check_if_solved performs: skip if already
// solved, time the call, and update the technique's counters.
func Run(e *Entry, p *puzzle.Puzzle) bool {
	if p.CheckIfSolved() {
		if p.Verbose {
			fmt.Fprintln(p.Out, "puzzle is solved already")
		}
		return false
	}

	if p.Verbose {
		fmt.Fprintf(p.Out, "applying %s technique\n", e.Tech.Name())
	}

	start := time.Now()
	progress := e.Tech.Apply(p)
	e.Stats.TotalTime += int64(time.Since(start))
	e.Stats.TotalUses++
	if progress {
		e.Stats.SuccessfulUses++
	}

	return progress
}

// NewEntry builds a registry Entry for tech, with a fresh, named
// TechniqueStats.
func NewEntry(tech Technique, tier Tier) *Entry {
	return &Entry{
		Tech:  tech,
		Tier:  tier,
		Stats: &core.TechniqueStats{Name: tech.Name()},
	}
}
