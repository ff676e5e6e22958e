// Package render formats a puzzle for human-readable output: a grid
// string (spec.md §6) and the dense digit string used by the batch
// format.
package render

import (
	"strconv"
	"strings"

	"sudoku-solver/internal/puzzle"
)

// Grid renders the puzzle as one line per row, cells separated by single
// spaces, 0 marking an empty cell.
func Grid(p *puzzle.Puzzle) string {
	var b strings.Builder
	for x := 0; x < p.Size; x++ {
		if x > 0 {
			b.WriteByte('\n')
		}
		for y := 0; y < p.Size; y++ {
			if y > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(p.Value(x, y)))
		}
	}
	return b.String()
}

// DigitString renders the puzzle as a single dense digit string, as
// produced and consumed by the batch puzzle format.
func DigitString(p *puzzle.Puzzle) string {
	var b strings.Builder
	for x := 0; x < p.Size; x++ {
		for y := 0; y < p.Size; y++ {
			b.WriteString(strconv.Itoa(p.Value(x, y)))
		}
	}
	return b.String()
}
