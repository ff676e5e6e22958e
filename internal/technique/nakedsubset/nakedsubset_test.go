package nakedsubset

import (
	"testing"

	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzle"
)

func TestApplyEliminatesNakedPair(t *testing.T) {
	p, err := puzzle.New(4, make([]int, 16))
	if err != nil {
		t.Fatalf("puzzle.New() error: %v", err)
	}

	// Restrict (0,0) and (0,1) to exactly {2, 3}, leaving (0,2) and (0,3)
	// with all four candidates: a naked pair in row 0.
	p.Eliminate(1, []core.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}})
	p.Eliminate(4, []core.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}})

	if progress := New().Apply(p); !progress {
		t.Fatal("expected progress eliminating the naked pair's candidates elsewhere")
	}

	for _, cell := range []core.Cell{{X: 0, Y: 2}, {X: 0, Y: 3}} {
		cands := p.Candidates(cell.X, cell.Y)
		if cands.Has(2) || cands.Has(3) {
			t.Errorf("cell (%d,%d) should have lost candidates 2 and 3, got %v", cell.X, cell.Y, cands)
		}
	}
}

func TestApplyNoProgressWithoutSubset(t *testing.T) {
	p, err := puzzle.New(4, make([]int, 16))
	if err != nil {
		t.Fatalf("puzzle.New() error: %v", err)
	}
	if New().Apply(p) {
		t.Fatal("expected no naked subset on a grid with no constraints")
	}
}
