package xwing

import (
	"testing"

	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzle"
)

func TestApplyEliminatesRectangleColumns(t *testing.T) {
	p, err := puzzle.New(9, make([]int, 81))
	if err != nil {
		t.Fatalf("puzzle.New() error: %v", err)
	}

	// Confine digit 5 in rows 0 and 3 to columns 2 and 5 only, forming an
	// X-Wing rectangle.
	for _, x := range []int{0, 3} {
		var toClear []core.Cell
		for y := 0; y < 9; y++ {
			if y != 2 && y != 5 {
				toClear = append(toClear, core.Cell{X: x, Y: y})
			}
		}
		p.Eliminate(5, toClear)
	}

	if progress := New().Apply(p); !progress {
		t.Fatal("expected progress eliminating 5 from the rest of columns 2 and 5")
	}

	for _, col := range []int{2, 5} {
		for _, x := range []int{1, 2, 4, 5, 6, 7, 8} {
			if p.Candidates(x, col).Has(5) {
				t.Errorf("cell (%d,%d) should have lost candidate 5", x, col)
			}
		}
	}
	// Rows 0 and 3 keep candidate 5 at their two columns.
	if !p.Candidates(0, 2).Has(5) || !p.Candidates(3, 5).Has(5) {
		t.Error("the rectangle's own cells should keep candidate 5")
	}
}

func TestApplyNoProgressWithoutRectangle(t *testing.T) {
	p, err := puzzle.New(9, make([]int, 81))
	if err != nil {
		t.Fatalf("puzzle.New() error: %v", err)
	}
	if New().Apply(p) {
		t.Fatal("expected no progress on a grid with no X-Wing pattern")
	}
}
