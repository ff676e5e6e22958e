// Package core holds the value types shared across the solver's packages:
// cell coordinates, the candidate bitset, and per-technique statistics.
package core

import "fmt"

// Cell identifies a cell by zero-based (x, y) coordinates, x is the row,
// y is the column, consistent with spec.md §6's worked example.
type Cell struct {
	X, Y int
}

// String renders a cell using the output notation from spec.md §6: column
// y as an uppercase letter, row x as a 1-based decimal (e.g. x=2,y=0 -> "A3").
func (c Cell) String() string {
	return fmt.Sprintf("%c%d", 'A'+byte(c.Y), c.X+1)
}

// Candidates is a bitset of possible digits 1..size for a cell. Bit i
// (1 <= i <= 16) represents digit i; bit 0 is unused. A uint32 comfortably
// covers the widest supported size (16).
type Candidates uint32

// NewCandidates builds a Candidates bitset from a slice of digits.
func NewCandidates(digits ...int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Set(d)
	}
	return c
}

// FullCandidates returns a bitset with digits 1..size all set.
func FullCandidates(size int) Candidates {
	var c Candidates
	for d := 1; d <= size; d++ {
		c = c.Set(d)
	}
	return c
}

func (c Candidates) Has(digit int) bool {
	if digit < 1 || digit > 31 {
		return false
	}
	return c&(1<<uint(digit)) != 0
}

func (c Candidates) Set(digit int) Candidates {
	if digit < 1 || digit > 31 {
		return c
	}
	return c | (1 << uint(digit))
}

func (c Candidates) Clear(digit int) Candidates {
	if digit < 1 || digit > 31 {
		return c
	}
	return c &^ (1 << uint(digit))
}

func (c Candidates) Count() int {
	count := 0
	for v := c; v != 0; v &= v - 1 {
		count++
	}
	return count
}

// Only returns the sole candidate digit and true if exactly one bit is set.
func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	for d := 1; d <= 31; d++ {
		if c.Has(d) {
			return d, true
		}
	}
	return 0, false
}

func (c Candidates) IsEmpty() bool {
	return c == 0
}

func (c Candidates) Union(other Candidates) Candidates {
	return c | other
}

func (c Candidates) Intersect(other Candidates) Candidates {
	return c & other
}

// Subtract returns the candidates in c but not in other.
func (c Candidates) Subtract(other Candidates) Candidates {
	return c &^ other
}

func (c Candidates) Equals(other Candidates) bool {
	return c == other
}

// ToSlice returns the candidate digits in ascending order.
func (c Candidates) ToSlice() []int {
	var out []int
	for d := 1; d <= 31; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (c Candidates) String() string {
	digits := c.ToSlice()
	s := "{"
	for i, d := range digits {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%d", d)
	}
	return s + "}"
}

// TechniqueStats holds the per-technique counters from spec.md §4.3: class
// level, surviving across puzzles within a batch, reset between batches.
type TechniqueStats struct {
	Name           string
	TotalUses      int
	SuccessfulUses int
	TotalTime      int64 // nanoseconds, summed across uses
}

// Reset zeroes the counters. Called by the solver between batches.
func (s *TechniqueStats) Reset() {
	s.TotalUses = 0
	s.SuccessfulUses = 0
	s.TotalTime = 0
}

// AvgNanosPerUse returns the average time per invocation, or 0 if unused.
func (s *TechniqueStats) AvgNanosPerUse() float64 {
	if s.TotalUses == 0 {
		return 0
	}
	return float64(s.TotalTime) / float64(s.TotalUses)
}
