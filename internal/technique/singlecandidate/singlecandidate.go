// Package singlecandidate implements the Single Candidate (naked single)
// technique: a cell with exactly one remaining candidate must hold that
// digit (spec.md §4.4).
package singlecandidate

import "sudoku-solver/internal/puzzle"

type Technique struct{}

func New() *Technique { return &Technique{} }

func (t *Technique) Name() string { return "Single Candidate" }

func (t *Technique) Apply(p *puzzle.Puzzle) bool {
	progress := false
	for x := 0; x < p.Size; x++ {
		for y := 0; y < p.Size; y++ {
			if p.Value(x, y) != 0 {
				continue
			}
			if v, ok := p.Candidates(x, y).Only(); ok {
				p.Assign(v, x, y)
				progress = true
			}
		}
	}
	return progress
}
