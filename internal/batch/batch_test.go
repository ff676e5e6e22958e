package batch

import (
	"strings"
	"testing"

	"sudoku-solver/internal/solver"
)

func TestRunSolvesEveryLine(t *testing.T) {
	contents := strings.Join([]string{
		"530070000600195000098000060800060003400803001700020006060000280000419005000080000",
		"1000001220000003",
	}, "\n")

	s := solver.New()
	result, err := Run(s, "mixed.txt", contents)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if result.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", result.TotalCount)
	}
	if len(result.Unsolved) != 0 {
		t.Errorf("expected both puzzles to solve, got %d unsolved", len(result.Unsolved))
	}
	if len(result.TechniqueText) == 0 {
		t.Error("expected per-technique report lines")
	}
}

func TestRunRejectsEmptyFile(t *testing.T) {
	s := solver.New()
	if _, err := Run(s, "empty.txt", "\n\n"); err == nil {
		t.Fatal("expected an error for a batch file with no puzzles")
	}
}

func TestReportIncludesFilenameAndSummary(t *testing.T) {
	s := solver.New()
	result, err := Run(s, "one.txt", "530070000600195000098000060800060003400803001700020006060000280000419005000080000")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	report := Report(result)
	if !strings.Contains(report, "one.txt (Single Candidate, Hidden Single)") {
		t.Error("expected report header to include the filename and high-tier technique names")
	}
	if !strings.Contains(report, "Total: 1") {
		t.Error("expected report to include the total count")
	}
	if !strings.Contains(report, "Used bruteforce") {
		t.Error("expected report to include the bruteforce usage line")
	}
	if !strings.Contains(report, "TOTAL USES:") {
		t.Error("expected report to include the total-uses line")
	}
}
