// Package nakedsubset implements the Naked Subset technique: when N
// unassigned cells within a group share exactly the same N candidates
// between them, those candidates can be eliminated from every other cell
// in the group (spec.md §4.6; covers naked pairs, triples, and quads).
package nakedsubset

import (
	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzle"
)

type Technique struct{}

func New() *Technique { return &Technique{} }

func (t *Technique) Name() string { return "Naked Subset" }

func (t *Technique) Apply(p *puzzle.Puzzle) bool {
	progress := false
	for _, group := range p.Geometry().AllGroupIndices() {
		var unassigned []core.Cell
		for _, c := range group {
			if !p.Candidates(c.X, c.Y).IsEmpty() {
				unassigned = append(unassigned, c)
			}
		}
		if len(unassigned) <= 2 {
			continue
		}

		seen := map[core.Candidates]int{}
		for _, c := range unassigned {
			seen[p.Candidates(c.X, c.Y)]++
		}

		for cands, count := range seen {
			size := cands.Count()
			if count > 1 && count == size && count != len(unassigned) {
				var subsetCells []core.Cell
				for _, c := range unassigned {
					if p.Candidates(c.X, c.Y).Equals(cands) {
						subsetCells = append(subsetCells, c)
					}
				}
				target := subtractCells(group, subsetCells)
				for _, v := range cands.ToSlice() {
					if p.Eliminate(v, target) {
						progress = true
					}
				}
			}
		}
	}
	return progress
}

func subtractCells(group, remove []core.Cell) []core.Cell {
	skip := make(map[core.Cell]bool, len(remove))
	for _, c := range remove {
		skip[c] = true
	}
	out := make([]core.Cell, 0, len(group))
	for _, c := range group {
		if !skip[c] {
			out = append(out, c)
		}
	}
	return out
}
