// Package solver drives a puzzle to completion: a priority-tiered loop of
// logical techniques, falling back to depth-first search with an explicit
// LIFO stack when the techniques stall (spec.md §4.11).
package solver

import (
	"fmt"

	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzle"
	"sudoku-solver/internal/technique"
	"sudoku-solver/internal/technique/hiddensingle"
	"sudoku-solver/internal/technique/hiddensubset"
	"sudoku-solver/internal/technique/lockedbox"
	"sudoku-solver/internal/technique/lockedline"
	"sudoku-solver/internal/technique/nakedsubset"
	"sudoku-solver/internal/technique/singlecandidate"
	"sudoku-solver/internal/technique/xwing"
	"sudoku-solver/pkg/constants"
)

// Solver owns one set of technique entries (and their running statistics)
// and applies them to puzzles handed to Solve.
type Solver struct {
	high         []*technique.Entry
	normal       []*technique.Entry
	low          []*technique.Entry
	all          []*technique.Entry
	branchesUsed int
}

// New builds a Solver with the seven techniques wired into their tiers:
// Single Candidate and Hidden Single are cheap and run to a fixed point
// first; Naked Subset and Locked Candidates on Line run once per round;
// Locked Candidates in Box, X-Wing, and Hidden Subset are the most
// expensive and only run once per round when the normal tier stalls.
func New() *Solver {
	s := &Solver{}
	add := func(dst *[]*technique.Entry, tier technique.Tier, t technique.Technique) {
		e := technique.NewEntry(t, tier)
		*dst = append(*dst, e)
		s.all = append(s.all, e)
	}

	add(&s.high, technique.TierHigh, singlecandidate.New())
	add(&s.high, technique.TierHigh, hiddensingle.New())

	add(&s.normal, technique.TierNormal, nakedsubset.New())
	add(&s.normal, technique.TierNormal, lockedline.New())

	add(&s.low, technique.TierLow, lockedbox.New())
	add(&s.low, technique.TierLow, xwing.New())
	add(&s.low, technique.TierLow, hiddensubset.New())

	return s
}

// Stats returns the running statistics for every wired technique, in tier
// order (high, normal, low).
func (s *Solver) Stats() []*core.TechniqueStats {
	out := make([]*core.TechniqueStats, 0, len(s.all))
	for _, e := range s.all {
		out = append(out, e.Stats)
	}
	return out
}

// ResetStats zeroes every technique's counters and the branching counter,
// for use between batches.
func (s *Solver) ResetStats() {
	for _, e := range s.all {
		e.Stats.Reset()
	}
	s.branchesUsed = 0
}

// BranchesUsed returns how many backtracking branches have been pushed
// since the last ResetStats (spec.md §4.11's "branching counter").
func (s *Solver) BranchesUsed() int {
	return s.branchesUsed
}

// HighTierNames returns the names of the high-priority techniques, in
// wiring order, for reports that list them alongside a batch's results.
func (s *Solver) HighTierNames() []string {
	names := make([]string, 0, len(s.high))
	for _, e := range s.high {
		names = append(names, e.Tech.Name())
	}
	return names
}

// Solve drives p to a solution, first through the logical technique loop
// and then, if that stalls short of a solution, through backtracking
// search. It returns true iff p ends solved and ValidateSolution passes.
func (s *Solver) Solve(p *puzzle.Puzzle) bool {
	s.runLogicalLoop(p)

	if !p.CheckIfSolved() {
		solved, branches := s.backtrack(p)
		s.branchesUsed += branches
		if solved != nil {
			*p = *solved
		}
	}

	if p.Verbose {
		s.giveBreakdown(p)
	}

	if !p.CheckIfSolved() {
		return false
	}

	if !p.ValidateSolution() {
		if p.Verbose {
			fmt.Fprintln(p.Out, "solution is invalid!")
		}
		return false
	}
	return true
}

// runLogicalLoop applies the high tier to a fixed point, then the normal
// tier once. If the normal tier made progress, it restarts from the high
// tier; only if the normal tier stalls does it escalate to the low tier,
// again restarting from the high tier on progress. The low tier never
// runs while the normal tier is still finding eliminations.
func (s *Solver) runLogicalLoop(p *puzzle.Puzzle) {
	for !p.CheckIfSolved() {
		s.applyToFixedPoint(s.high, p)
		if p.CheckIfSolved() {
			return
		}

		if s.applyOnce(s.normal, p) {
			continue
		}

		if s.applyOnce(s.low, p) {
			continue
		}

		if p.Verbose {
			fmt.Fprintln(p.Out, "no progress detected, stopping the solve")
		}
		return
	}
}

func (s *Solver) applyToFixedPoint(group []*technique.Entry, p *puzzle.Puzzle) bool {
	total := false
	for {
		round := false
		for _, e := range group {
			if technique.Run(e, p) {
				round = true
			}
		}
		total = total || round
		if !round {
			return total
		}
	}
}

func (s *Solver) applyOnce(group []*technique.Entry, p *puzzle.Puzzle) bool {
	progress := false
	for _, e := range group {
		if technique.Run(e, p) {
			progress = true
		}
	}
	return progress
}

func (s *Solver) giveBreakdown(p *puzzle.Puzzle) {
	total := p.Size * p.Size
	current := p.CountCells()
	fmt.Fprintf(p.Out, "\noriginal clue count: %d\n", p.OriginalClueCount())
	fmt.Fprintf(p.Out, "cells solved: %d\n", current-p.OriginalClueCount())
	fmt.Fprintf(p.Out, "final progress: %.0f%%\n\n", 100*float64(current)/float64(total))
}

// backtrack performs depth-first search over an explicit LIFO work stack
// of candidate puzzle states, branching on the cell with the fewest
// remaining candidates (MRV). It re-runs the logical loop after each
// branch, since an assignment often unlocks further deductions. Returns
// the solved puzzle (or nil if the branch count budget is exhausted or no
// branch leads to a solution) alongside how many branches it pushed, so
// the caller can fold that count into the running branching counter.
func (s *Solver) backtrack(p *puzzle.Puzzle) (*puzzle.Puzzle, int) {
	branches := 0

	if p.IsImpossible() {
		return nil, branches
	}
	if p.CheckIfSolved() {
		if p.ValidateSolution() {
			return p, branches
		}
		return nil, branches
	}

	cell, ok := p.FindCellWithFewestCandidates()
	if !ok {
		return nil, branches
	}

	type frame struct {
		state *puzzle.Puzzle
	}
	var stack []frame
	for _, v := range p.Candidates(cell.X, cell.Y).ToSlice() {
		branch := p.Copy()
		branch.Assign(v, cell.X, cell.Y)
		stack = append(stack, frame{state: branch})
		branches++
	}

	for len(stack) > 0 {
		if branches > constants.MaxBacktrackBranches {
			return nil, branches
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s.runLogicalLoop(top.state)
		if top.state.IsImpossible() {
			continue
		}
		if top.state.CheckIfSolved() {
			if top.state.ValidateSolution() {
				return top.state, branches
			}
			continue
		}

		next, ok := top.state.FindCellWithFewestCandidates()
		if !ok {
			continue
		}
		for _, v := range top.state.Candidates(next.X, next.Y).ToSlice() {
			child := top.state.Copy()
			child.Assign(v, next.X, next.Y)
			stack = append(stack, frame{state: child})
			branches++
		}
	}

	return nil, branches
}
