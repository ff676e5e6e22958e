package hiddensubset

import (
	"testing"

	"sudoku-solver/internal/core"
	"sudoku-solver/internal/puzzle"
)

func TestApplyStripsExtraCandidatesFromHiddenPair(t *testing.T) {
	p, err := puzzle.New(4, make([]int, 16))
	if err != nil {
		t.Fatalf("puzzle.New() error: %v", err)
	}

	// Confine digits 3 and 4 within row 0 to cells (0,0) and (0,1), which
	// still carry 1 and 2 as extra candidates: a hidden pair.
	p.Eliminate(3, []core.Cell{{X: 0, Y: 2}, {X: 0, Y: 3}})
	p.Eliminate(4, []core.Cell{{X: 0, Y: 2}, {X: 0, Y: 3}})

	if progress := New().Apply(p); !progress {
		t.Fatal("expected progress stripping extra candidates from the hidden pair")
	}

	want := core.NewCandidates(3, 4)
	if got := p.Candidates(0, 0); !got.Equals(want) {
		t.Errorf("Candidates(0,0) = %v, want %v", got, want)
	}
	if got := p.Candidates(0, 1); !got.Equals(want) {
		t.Errorf("Candidates(0,1) = %v, want %v", got, want)
	}
}

func TestApplyNoProgressWithoutHiddenSubset(t *testing.T) {
	p, err := puzzle.New(4, make([]int, 16))
	if err != nil {
		t.Fatalf("puzzle.New() error: %v", err)
	}
	if New().Apply(p) {
		t.Fatal("expected no progress on a grid with no hidden subset")
	}
}
