// Package puzzle implements the Sudoku puzzle state: a grid of cell values,
// a parallel grid of candidate sets, and the two mutation primitives
// (assign, eliminate) every technique and the solver build on (spec.md
// §3, §4.2).
package puzzle

import (
	"fmt"
	"io"
	"os"

	"sudoku-solver/internal/core"
	"sudoku-solver/internal/geometry"
)

// Puzzle is the mutable per-puzzle state. Cell (x, y) is stored at the
// row-major offset x*Size+Y, consistent with spec.md's "row-major
// addressable" grid (x is the row, y is the column; see DESIGN.md for why).
type Puzzle struct {
	Size    int
	BoxSize int

	geo *geometry.Geometry

	values     []int            // 0 = empty, else 1..Size
	candidates []core.Candidates // empty for assigned cells (invariant §3.1)

	originalClueCount int
	solved            bool // memoised; false -> true only

	// Verbose gates the per-mutation log line (spec.md §4.2, §5). Output is
	// a process-wide policy in spirit but threaded explicitly here rather
	// than a package global, per DESIGN.md's config-threading decision.
	Verbose bool
	Out     io.Writer
}

// New constructs a Puzzle from a parsed grid. grid must have size*size
// entries in row-major (x, y) order with 0 marking an empty cell. Returns
// an error if size isn't one of the supported sizes.
func New(size int, grid []int) (*Puzzle, error) {
	geo, err := geometry.For(size)
	if err != nil {
		return nil, err
	}
	if len(grid) != size*size {
		return nil, fmt.Errorf("grid has %d cells, want %d for size %d", len(grid), size*size, size)
	}

	p := &Puzzle{
		Size:       size,
		BoxSize:    geo.BoxSize,
		geo:        geo,
		values:     make([]int, size*size),
		candidates: make([]core.Candidates, size*size),
		Out:        os.Stdout,
	}
	copy(p.values, grid)
	p.initCandidates()
	p.originalClueCount = p.CountCells()
	return p, nil
}

func (p *Puzzle) index(x, y int) int { return x*p.Size + y }

// initCandidates populates candidates for every empty cell from its peers'
// current values (spec.md §4.2 invariant 4). Called once at construction.
func (p *Puzzle) initCandidates() {
	for x := 0; x < p.Size; x++ {
		for y := 0; y < p.Size; y++ {
			idx := p.index(x, y)
			if p.values[idx] != 0 {
				p.candidates[idx] = 0
				continue
			}
			p.candidates[idx] = p.candidatesForCell(x, y)
		}
	}
}

func (p *Puzzle) candidatesForCell(x, y int) core.Candidates {
	cands := core.FullCandidates(p.Size)
	for _, peer := range p.geo.PeerIndices(x, y) {
		if v := p.values[p.index(peer.X, peer.Y)]; v != 0 {
			cands = cands.Clear(v)
		}
	}
	return cands
}

// Geometry exposes the puzzle's (shared, read-only) geometry helpers.
func (p *Puzzle) Geometry() *geometry.Geometry { return p.geo }

// Value returns the digit at (x, y), or 0 if empty.
func (p *Puzzle) Value(x, y int) int {
	return p.values[p.index(x, y)]
}

// Candidates returns the read-only candidate set for (x, y).
func (p *Puzzle) Candidates(x, y int) core.Candidates {
	return p.candidates[p.index(x, y)]
}

// OriginalClueCount is set once at construction and never mutated.
func (p *Puzzle) OriginalClueCount() int { return p.originalClueCount }

// Assign sets cell (x, y) to v, clears its candidates, and removes v from
// every peer's candidates (spec.md §4.2).
func (p *Puzzle) Assign(v, x, y int) {
	idx := p.index(x, y)
	p.values[idx] = v
	p.candidates[idx] = 0

	for _, peer := range p.geo.PeerIndices(x, y) {
		pIdx := p.index(peer.X, peer.Y)
		p.candidates[pIdx] = p.candidates[pIdx].Clear(v)
	}

	if p.Verbose {
		fmt.Fprintf(p.Out, "assign %d at %s\n", v, core.Cell{X: x, Y: y})
	}
}

// Eliminate removes value from every cell's candidates in group, returning
// true iff at least one removal happened.
func (p *Puzzle) Eliminate(value int, group []core.Cell) bool {
	removed := false
	var removedAt []core.Cell
	for _, c := range group {
		idx := p.index(c.X, c.Y)
		if p.candidates[idx].Has(value) {
			p.candidates[idx] = p.candidates[idx].Clear(value)
			removed = true
			removedAt = append(removedAt, c)
		}
	}
	if removed && p.Verbose {
		fmt.Fprintf(p.Out, "eliminate %d from %v\n", value, removedAt)
	}
	return removed
}

// CandidatesCounter counts, for each value, how many cells in group carry
// it as a candidate (spec.md §4.2).
func (p *Puzzle) CandidatesCounter(group []core.Cell) map[int]int {
	counts := make(map[int]int)
	for _, c := range group {
		for _, v := range p.Candidates(c.X, c.Y).ToSlice() {
			counts[v]++
		}
	}
	return counts
}

// CellsWithCandidate returns the subset of group whose candidates contain
// value.
func (p *Puzzle) CellsWithCandidate(value int, group []core.Cell) []core.Cell {
	var out []core.Cell
	for _, c := range group {
		if p.Candidates(c.X, c.Y).Has(value) {
			out = append(out, c)
		}
	}
	return out
}

// CellsWithExactCandidates returns the subset of group whose candidate set
// equals set exactly.
func (p *Puzzle) CellsWithExactCandidates(set core.Candidates, group []core.Cell) []core.Cell {
	var out []core.Cell
	for _, c := range group {
		if p.Candidates(c.X, c.Y).Equals(set) {
			out = append(out, c)
		}
	}
	return out
}

// CheckIfSolved returns true iff every cell holds a non-zero value. The
// true result is memoised; false is recomputed on every call.
func (p *Puzzle) CheckIfSolved() bool {
	if p.solved {
		return true
	}
	for _, v := range p.values {
		if v == 0 {
			return false
		}
	}
	p.solved = true
	return true
}

// IsImpossible reports whether the puzzle has no legal continuation: some
// empty cell has no candidates, or some group is missing a required digit
// with no remaining cell that could host it (spec.md §3).
func (p *Puzzle) IsImpossible() bool {
	for x := 0; x < p.Size; x++ {
		for y := 0; y < p.Size; y++ {
			if p.values[p.index(x, y)] == 0 && p.Candidates(x, y).IsEmpty() {
				return true
			}
		}
	}

	for _, group := range p.geo.AllGroupIndices() {
		present := core.Candidates(0)
		for _, c := range group {
			if v := p.Value(c.X, c.Y); v != 0 {
				present = present.Set(v)
			}
		}
		possible := present
		for _, c := range group {
			if p.Value(c.X, c.Y) == 0 {
				possible = possible.Union(p.Candidates(c.X, c.Y))
			}
		}
		if possible.Count() < p.Size {
			return true
		}
	}
	return false
}

// ValidateSolution reports whether every row, column, and box is a
// permutation of 1..Size.
func (p *Puzzle) ValidateSolution() bool {
	for _, group := range p.geo.AllGroupIndices() {
		seen := core.Candidates(0)
		for _, c := range group {
			v := p.Value(c.X, c.Y)
			if v == 0 || seen.Has(v) {
				return false
			}
			seen = seen.Set(v)
		}
		if seen.Count() != p.Size {
			return false
		}
	}
	return true
}

// FindCellWithFewestCandidates implements the MRV branching heuristic: the
// empty cell whose candidate set has minimal cardinality >= 2, ties broken
// by row-major order. ok is false if no empty cell qualifies.
func (p *Puzzle) FindCellWithFewestCandidates() (cell core.Cell, ok bool) {
	best := -1
	for x := 0; x < p.Size; x++ {
		for y := 0; y < p.Size; y++ {
			if p.values[p.index(x, y)] != 0 {
				continue
			}
			count := p.Candidates(x, y).Count()
			if count < 2 {
				continue
			}
			if best == -1 || count < best {
				best = count
				cell = core.Cell{X: x, Y: y}
				ok = true
			}
		}
	}
	return cell, ok
}

// CountCells returns the number of assigned cells.
func (p *Puzzle) CountCells() int {
	n := 0
	for _, v := range p.values {
		if v != 0 {
			n++
		}
	}
	return n
}

// Grid returns the cell values as a flat row-major slice (a copy).
func (p *Puzzle) Grid() []int {
	out := make([]int, len(p.values))
	copy(out, p.values)
	return out
}

// Copy performs a deep copy of the puzzle for speculative branching
// (spec.md §4.2, §4.11). The copy shares the (read-only) Geometry.
func (p *Puzzle) Copy() *Puzzle {
	cp := &Puzzle{
		Size:              p.Size,
		BoxSize:           p.BoxSize,
		geo:               p.geo,
		values:            make([]int, len(p.values)),
		candidates:        make([]core.Candidates, len(p.candidates)),
		originalClueCount: p.originalClueCount,
		solved:            p.solved,
		Verbose:           p.Verbose,
		Out:               p.Out,
	}
	copy(cp.values, p.values)
	copy(cp.candidates, p.candidates)
	return cp
}
