package technique

import (
	"testing"

	"sudoku-solver/internal/puzzle"
)

type stubTechnique struct {
	name     string
	progress bool
	calls    int
}

func (s *stubTechnique) Name() string { return s.name }

func (s *stubTechnique) Apply(p *puzzle.Puzzle) bool {
	s.calls++
	return s.progress
}

func TestRunSkipsWhenAlreadySolved(t *testing.T) {
	solvedGrid := []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	}
	p, err := puzzle.New(4, solvedGrid)
	if err != nil {
		t.Fatalf("puzzle.New() error: %v", err)
	}

	stub := &stubTechnique{name: "stub", progress: true}
	entry := NewEntry(stub, TierHigh)

	if Run(entry, p) {
		t.Fatal("expected Run to report no progress on an already-solved puzzle")
	}
	if stub.calls != 0 {
		t.Fatalf("expected Apply not to be called, got %d calls", stub.calls)
	}
}

func TestRunUpdatesStats(t *testing.T) {
	p, err := puzzle.New(4, make([]int, 16))
	if err != nil {
		t.Fatalf("puzzle.New() error: %v", err)
	}

	stub := &stubTechnique{name: "stub", progress: true}
	entry := NewEntry(stub, TierNormal)

	if !Run(entry, p) {
		t.Fatal("expected Run to report progress")
	}
	if entry.Stats.TotalUses != 1 || entry.Stats.SuccessfulUses != 1 {
		t.Fatalf("unexpected stats after one successful use: %+v", entry.Stats)
	}

	stub.progress = false
	Run(entry, p)
	if entry.Stats.TotalUses != 2 || entry.Stats.SuccessfulUses != 1 {
		t.Fatalf("unexpected stats after one unsuccessful use: %+v", entry.Stats)
	}
}
