// Package hiddensubset implements the Hidden Subset technique: when N
// digits are confined to the same N cells within a group, every other
// candidate can be stripped from those cells, even if they carry more
// than N candidates today (spec.md §4.10; covers hidden pairs through
// quads).
package hiddensubset

import (
	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzle"
)

type Technique struct{}

func New() *Technique { return &Technique{} }

func (t *Technique) Name() string { return "Hidden Subset" }

func (t *Technique) Apply(p *puzzle.Puzzle) bool {
	progress := false
	for _, group := range p.Geometry().AllGroupIndices() {
		if t.findInGroup(p, group) {
			progress = true
		}
	}
	return progress
}

func (t *Technique) findInGroup(p *puzzle.Puzzle, group []core.Cell) bool {
	var cells []core.Cell
	var cands []core.Candidates
	for _, c := range group {
		if v := p.Candidates(c.X, c.Y); !v.IsEmpty() {
			cells = append(cells, c)
			cands = append(cands, v)
		}
	}
	n := len(cells)
	if n <= 2 {
		return false
	}

	var allValues core.Candidates
	for _, c := range cands {
		allValues = allValues.Union(c)
	}

	progress := false
	for count := 2; count <= 4 && count < n; count++ {
		for _, combo := range combinations(n, count) {
			var comboValues core.Candidates
			inCombo := make(map[int]bool, count)
			for _, idx := range combo {
				comboValues = comboValues.Union(cands[idx])
				inCombo[idx] = true
			}

			var restValues core.Candidates
			for i, c := range cands {
				if !inCombo[i] {
					restValues = restValues.Union(c)
				}
			}

			targetValues := allValues.Subtract(restValues)
			if targetValues.Count() != count {
				continue
			}

			valuesToRemove := comboValues.Subtract(targetValues)
			if valuesToRemove.IsEmpty() {
				continue
			}

			var targetCells []core.Cell
			for _, idx := range combo {
				targetCells = append(targetCells, cells[idx])
			}
			for _, v := range valuesToRemove.ToSlice() {
				if p.Eliminate(v, targetCells) {
					progress = true
				}
			}
		}
	}
	return progress
}

// combinations returns every k-subset of {0, ..., n-1} as index lists.
func combinations(n, k int) [][]int {
	var out [][]int
	combo := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			cp := make([]int, k)
			copy(cp, combo)
			out = append(out, cp)
			return
		}
		for i := start; i < n; i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}
