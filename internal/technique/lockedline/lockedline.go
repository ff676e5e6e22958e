// Package lockedline implements Locked Candidates on a Line (pointing
// pairs/triples): when a digit's candidates within a box all lie on one
// row or column, that digit can be eliminated from the rest of the line
// outside the box (spec.md §4.7).
package lockedline

import (
	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzle"
)

type Technique struct{}

func New() *Technique { return &Technique{} }

func (t *Technique) Name() string { return "Locked Candidates on Line" }

func (t *Technique) Apply(p *puzzle.Puzzle) bool {
	geo := p.Geometry()
	progress := false

	for _, box := range geo.AllBoxIndices() {
		counts := p.CandidatesCounter(box)
		for value, count := range counts {
			if count < 2 || count > p.BoxSize {
				continue
			}

			cells := p.CellsWithCandidate(value, box)
			if sameRow(cells) {
				line := geo.RowIndices(cells[0].X, cells[0].Y)
				target := subtract(line, box)
				if p.Eliminate(value, target) {
					progress = true
				}
			} else if sameCol(cells) {
				line := geo.ColumnIndices(cells[0].X, cells[0].Y)
				target := subtract(line, box)
				if p.Eliminate(value, target) {
					progress = true
				}
			}
		}
	}
	return progress
}

func sameRow(cells []core.Cell) bool {
	for _, c := range cells[1:] {
		if c.X != cells[0].X {
			return false
		}
	}
	return true
}

func sameCol(cells []core.Cell) bool {
	for _, c := range cells[1:] {
		if c.Y != cells[0].Y {
			return false
		}
	}
	return true
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
