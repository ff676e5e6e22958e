// Package hiddensingle implements the Hidden Single technique: a digit
// that can occupy only one cell within a row, column, or box must be
// placed there, even if that cell carries other candidates (spec.md §4.5).
package hiddensingle

import (
	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzle"
)

type Technique struct{}

func New() *Technique { return &Technique{} }

func (t *Technique) Name() string { return "Hidden Single" }

func (t *Technique) Apply(p *puzzle.Puzzle) bool {
	geo := p.Geometry()
	progress := false
	for _, groups := range [][][]core.Cell{geo.AllRowIndices(), geo.AllColumnIndices(), geo.AllBoxIndices()} {
		if t.findInGroups(p, groups) {
			progress = true
		}
	}
	return progress
}

func (t *Technique) findInGroups(p *puzzle.Puzzle, groups [][]core.Cell) bool {
	progress := false
	for _, group := range groups {
		counts := p.CandidatesCounter(group)
		for value, count := range counts {
			if count != 1 {
				continue
			}
			for _, c := range p.CellsWithCandidate(value, group) {
				p.Assign(value, c.X, c.Y)
				progress = true
			}
		}
	}
	return progress
}
