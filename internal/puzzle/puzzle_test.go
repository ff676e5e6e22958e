package puzzle

import "testing"

// a solvable 4x4 puzzle: row-major, 0 is empty.
var fourByFour = []int{
	1, 0, 0, 4,
	0, 4, 1, 0,
	0, 1, 4, 0,
	4, 0, 0, 1,
}

var solvedNine = []int{
	5, 3, 4, 6, 7, 8, 9, 1, 2,
	6, 7, 2, 1, 9, 5, 3, 4, 8,
	1, 9, 8, 3, 4, 2, 5, 6, 7,
	8, 5, 9, 7, 6, 1, 4, 2, 3,
	4, 2, 6, 8, 5, 3, 7, 9, 1,
	7, 1, 3, 9, 2, 4, 8, 5, 6,
	9, 6, 1, 5, 3, 7, 2, 8, 4,
	2, 8, 7, 4, 1, 9, 6, 3, 5,
	3, 4, 5, 2, 8, 6, 1, 7, 9,
}

func TestNewRejectsBadSize(t *testing.T) {
	if _, err := New(5, make([]int, 25)); err == nil {
		t.Fatal("expected error for unsupported size")
	}
	if _, err := New(4, make([]int, 10)); err == nil {
		t.Fatal("expected error for mismatched grid length")
	}
}

func TestInitialCandidatesExcludePeerValues(t *testing.T) {
	p, err := New(4, fourByFour)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// (0,1) is empty; its row has 1 and 4, so only 2 and 3 remain.
	cands := p.Candidates(0, 1)
	if cands.Has(1) || cands.Has(4) {
		t.Errorf("candidates at (0,1) should exclude row values, got %v", cands)
	}
	if !cands.Has(2) || !cands.Has(3) {
		t.Errorf("candidates at (0,1) should include 2 and 3, got %v", cands)
	}
}

func TestAssignClearsPeerCandidates(t *testing.T) {
	p, err := New(4, fourByFour)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	p.Assign(2, 0, 1)
	if p.Value(0, 1) != 2 {
		t.Fatalf("Value(0,1) = %d, want 2", p.Value(0, 1))
	}
	if !p.Candidates(0, 1).IsEmpty() {
		t.Errorf("assigned cell should have no candidates")
	}
	for _, peer := range p.Geometry().PeerIndices(0, 1) {
		if p.Candidates(peer.X, peer.Y).Has(2) {
			t.Errorf("peer (%d,%d) still has candidate 2 after assignment", peer.X, peer.Y)
		}
	}
}

func TestCheckIfSolved(t *testing.T) {
	p, err := New(9, solvedNine)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if !p.CheckIfSolved() {
		t.Fatal("expected a fully-filled grid to report solved")
	}

	incomplete := append([]int{}, solvedNine...)
	incomplete[0] = 0
	p2, _ := New(9, incomplete)
	if p2.CheckIfSolved() {
		t.Fatal("expected a grid with an empty cell to report unsolved")
	}
}

func TestValidateSolution(t *testing.T) {
	p, _ := New(9, solvedNine)
	if !p.ValidateSolution() {
		t.Fatal("expected a correct solution to validate")
	}

	broken := append([]int{}, solvedNine...)
	broken[0], broken[1] = broken[1], broken[0]
	pb, _ := New(9, broken)
	if pb.ValidateSolution() {
		t.Fatal("expected columns with a duplicate to fail validation")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	p, _ := New(4, fourByFour)
	cp := p.Copy()

	cp.Assign(2, 0, 1)
	if p.Value(0, 1) != 0 {
		t.Fatal("mutating the copy should not affect the original")
	}
}

func TestFindCellWithFewestCandidates(t *testing.T) {
	p, _ := New(4, fourByFour)
	cell, ok := p.FindCellWithFewestCandidates()
	if !ok {
		t.Fatal("expected an empty cell with >= 2 candidates")
	}
	if p.Value(cell.X, cell.Y) != 0 {
		t.Fatalf("chosen cell (%d,%d) is not empty", cell.X, cell.Y)
	}
}

func TestCountCellsAndOriginalClueCount(t *testing.T) {
	p, _ := New(4, fourByFour)
	clues := 0
	for _, v := range fourByFour {
		if v != 0 {
			clues++
		}
	}
	if p.OriginalClueCount() != clues {
		t.Fatalf("OriginalClueCount() = %d, want %d", p.OriginalClueCount(), clues)
	}
	if p.CountCells() != p.OriginalClueCount() {
		t.Fatalf("CountCells() = %d, want %d before any assignment", p.CountCells(), p.OriginalClueCount())
	}
}
