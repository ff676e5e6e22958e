// Package xwing implements the X-Wing technique: when a digit's only two
// candidate cells in each of two rows fall in the same pair of columns
// (or vice versa for columns), that digit can be eliminated from the rest
// of those columns (or rows) (spec.md §4.9).
package xwing

import (
	"sort"

	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzle"
)

type Technique struct{}

func New() *Technique { return &Technique{} }

func (t *Technique) Name() string { return "X-Wing" }

func (t *Technique) Apply(p *puzzle.Puzzle) bool {
	geo := p.Geometry()

	rowProgress := t.find(p, geo.AllRowIndices(), func(c core.Cell) []core.Cell {
		return geo.ColumnIndices(c.X, c.Y)
	})
	colProgress := t.find(p, geo.AllColumnIndices(), func(c core.Cell) []core.Cell {
		return geo.RowIndices(c.X, c.Y)
	})

	return rowProgress || colProgress
}

func (t *Technique) find(p *puzzle.Puzzle, groups [][]core.Cell, secondary func(core.Cell) []core.Cell) bool {
	progress := false

	valuesByGroup := map[int]core.Candidates{}
	for i, group := range groups {
		counts := p.CandidatesCounter(group)
		var vals core.Candidates
		for value, count := range counts {
			if count == 2 {
				vals = vals.Set(value)
			}
		}
		if !vals.IsEmpty() {
			valuesByGroup[i] = vals
		}
	}

	groupIdx := make([]int, 0, len(valuesByGroup))
	for i := range valuesByGroup {
		groupIdx = append(groupIdx, i)
	}
	sort.Ints(groupIdx)

	for ai := 0; ai < len(groupIdx); ai++ {
		for bi := ai + 1; bi < len(groupIdx); bi++ {
			a, b := groupIdx[ai], groupIdx[bi]
			common := valuesByGroup[a].Intersect(valuesByGroup[b])
			if common.IsEmpty() {
				continue
			}

			for _, value := range common.ToSlice() {
				combined := append(append([]core.Cell{}, groups[a]...), groups[b]...)
				cells := p.CellsWithCandidate(value, combined)
				if len(cells) != 4 {
					continue
				}
				sort.Slice(cells, func(i, j int) bool {
					if cells[i].X != cells[j].X {
						return cells[i].X < cells[j].X
					}
					return cells[i].Y < cells[j].Y
				})

				if !isRectangle(cells[0], cells[1], cells[2], cells[3]) {
					continue
				}

				target := unique(append(secondary(cells[0]), secondary(cells[3])...), cells)
				if p.Eliminate(value, target) {
					progress = true
				}
			}
		}
	}
	return progress
}

func isRectangle(a, b, c, d core.Cell) bool {
	return a.X == b.X && c.X == d.X && a.Y == c.Y && b.Y == d.Y
}

func unique(group, remove []core.Cell) []core.Cell {
	skip := make(map[core.Cell]bool, len(remove))
	for _, c := range remove {
		skip[c] = true
	}
	seen := make(map[core.Cell]bool, len(group))
	out := make([]core.Cell, 0, len(group))
	for _, c := range group {
		if skip[c] || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
