package lockedline

import (
	"testing"

	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzle"
)

func TestApplyEliminatesAlongLine(t *testing.T) {
	p, err := puzzle.New(4, make([]int, 16))
	if err != nil {
		t.Fatalf("puzzle.New() error: %v", err)
	}

	// Confine digit 1 within box 0 to cells (1,0) and (1,1) (box-only
	// candidates removed elsewhere), so the only remaining box-0 cells
	// with candidate 1 are the two cells of row 1: a pointing pair.
	p.Eliminate(1, []core.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}})

	if progress := New().Apply(p); !progress {
		t.Fatal("expected progress eliminating 1 from the rest of row 1")
	}

	for _, y := range []int{2, 3} {
		if p.Candidates(1, y).Has(1) {
			t.Errorf("cell (1,%d) should have lost candidate 1, got %v", y, p.Candidates(1, y))
		}
	}
}

func TestApplyNoProgressWithoutLine(t *testing.T) {
	p, err := puzzle.New(4, make([]int, 16))
	if err != nil {
		t.Fatalf("puzzle.New() error: %v", err)
	}
	if New().Apply(p) {
		t.Fatal("expected no progress on a grid with no line constraint")
	}
}
