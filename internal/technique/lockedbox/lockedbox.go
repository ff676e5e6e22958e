// Package lockedbox implements Locked Candidates in a Box (claiming): when
// a digit's candidates within a row or column all lie in one box, that
// digit can be eliminated from the rest of the box outside the line
// (spec.md §4.8).
package lockedbox

import (
	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzle"
)

type Technique struct{}

func New() *Technique { return &Technique{} }

func (t *Technique) Name() string { return "Locked Candidates in Box" }

func (t *Technique) Apply(p *puzzle.Puzzle) bool {
	geo := p.Geometry()
	progress := false

	lines := append(append([][]core.Cell{}, geo.AllRowIndices()...), geo.AllColumnIndices()...)
	for _, line := range lines {
		counts := p.CandidatesCounter(line)
		for value, count := range counts {
			if count < 2 || count > p.BoxSize {
				continue
			}

			cells := p.CellsWithCandidate(value, line)
			base := geo.BoxBaseIndex(cells[0].X, cells[0].Y)
			sameBox := true
			for _, c := range cells[1:] {
				if geo.BoxBaseIndex(c.X, c.Y) != base {
					sameBox = false
					break
				}
			}
			if !sameBox {
				continue
			}

			box := geo.BoxIndices(cells[0].X, cells[0].Y)
			target := subtract(box, line)
			if p.Eliminate(value, target) {
				progress = true
			}
		}
	}
	return progress
}

func subtract(group, remove []core.Cell) []core.Cell {
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
