// Package geometry provides pure, size-parameterized index helpers for a
// Sudoku grid: row/column/box membership, peer sets, and group
// enumerations (spec.md §4.1). Results depend only on (size, box_size);
// a Geometry is built once per puzzle size and shared read-only.
package geometry

import (
	"fmt"
	"sync"

	"sudoku-solver/internal/core"
	"sudoku-solver/pkg/constants"
)

// UnitType distinguishes the three kinds of group a cell belongs to.
type UnitType int

const (
	UnitRow UnitType = iota
	UnitCol
	UnitBox
)

func (t UnitType) String() string {
	switch t {
	case UnitRow:
		return "row"
	case UnitCol:
		return "column"
	case UnitBox:
		return "box"
	default:
		return "unknown"
	}
}

// Unit is one row, column, or box: exactly `size` cells (spec.md §3).
type Unit struct {
	Type  UnitType
	Index int
	Cells []core.Cell
}

// Geometry holds every precomputed index collection for one puzzle size.
// Callers never mutate the returned slices.
type Geometry struct {
	Size    int
	BoxSize int

	rows  [][]core.Cell // rows[x] = the size cells of row x
	cols  [][]core.Cell // cols[y] = the size cells of column y
	boxes [][]core.Cell // boxes[b] = the size cells of box b, row-major box order

	peers [][]core.Cell // peers[x*size+y] = peers of cell (x, y)
	boxOf []int         // boxOf[x*size+y] = box index of cell (x, y)
}

var (
	cacheMu sync.Mutex
	cache   = map[int]*Geometry{}
)

// For builds (or returns the cached) Geometry for the given puzzle size.
// Returns an error if size isn't one of the supported sizes (4, 9, 16).
func For(size int) (*Geometry, error) {
	boxSize, ok := constants.SupportedSizes[size]
	if !ok {
		return nil, fmt.Errorf("unsupported puzzle size: %d", size)
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if g, ok := cache[size]; ok {
		return g, nil
	}

	g := build(size, boxSize)
	cache[size] = g
	return g, nil
}

func build(size, boxSize int) *Geometry {
	g := &Geometry{
		Size:    size,
		BoxSize: boxSize,
		rows:    make([][]core.Cell, size),
		cols:    make([][]core.Cell, size),
		boxes:   make([][]core.Cell, size),
		peers:   make([][]core.Cell, size*size),
		boxOf:   make([]int, size*size),
	}

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			g.rows[x] = append(g.rows[x], core.Cell{X: x, Y: y})
			g.cols[y] = append(g.cols[y], core.Cell{X: x, Y: y})

			boxX, boxY := x-x%boxSize, y-y%boxSize
			boxIdx := (boxX/boxSize)*boxSize + boxY/boxSize
			g.boxes[boxIdx] = append(g.boxes[boxIdx], core.Cell{X: x, Y: y})
			g.boxOf[x*size+y] = boxIdx
		}
	}

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			seen := make(map[core.Cell]bool)
			var peers []core.Cell
			add := func(cells []core.Cell) {
				for _, c := range cells {
					if c.X == x && c.Y == y {
						continue
					}
					if !seen[c] {
						seen[c] = true
						peers = append(peers, c)
					}
				}
			}
			add(g.rows[x])
			add(g.cols[y])
			add(g.boxes[g.boxOf[x*size+y]])
			g.peers[x*size+y] = peers
		}
	}

	return g
}

// RowIndices returns the size cells forming the row containing (x, y).
func (g *Geometry) RowIndices(x, y int) []core.Cell { return g.rows[x] }

// ColumnIndices returns the size cells forming the column containing (x, y).
func (g *Geometry) ColumnIndices(x, y int) []core.Cell { return g.cols[y] }

// BoxIndices returns the size cells forming the box containing (x, y).
func (g *Geometry) BoxIndices(x, y int) []core.Cell {
	return g.boxes[g.boxOf[x*g.Size+y]]
}

// PeerIndices returns the union of (x, y)'s row, column, and box, excluding
// (x, y) itself. Cardinality is 3*size - 2*box_size - 1.
func (g *Geometry) PeerIndices(x, y int) []core.Cell {
	return g.peers[x*g.Size+y]
}

// BoxBaseIndex returns the top-left cell of the box containing (x, y).
func (g *Geometry) BoxBaseIndex(x, y int) core.Cell {
	return core.Cell{X: x - x%g.BoxSize, Y: y - y%g.BoxSize}
}

// BoxOf returns the box index (0-based, row-major box order) of (x, y).
func (g *Geometry) BoxOf(x, y int) int {
	return g.boxOf[x*g.Size+y]
}

// AllRowIndices returns all `size` row units, indexed by row number.
func (g *Geometry) AllRowIndices() [][]core.Cell { return g.rows }

// AllColumnIndices returns all `size` column units, indexed by column number.
func (g *Geometry) AllColumnIndices() [][]core.Cell { return g.cols }

// AllBoxIndices returns all `size` box units, in row-major box order.
func (g *Geometry) AllBoxIndices() [][]core.Cell { return g.boxes }

// AllGroupIndices concatenates rows, then columns, then boxes: 3*size
// groups total.
func (g *Geometry) AllGroupIndices() [][]core.Cell {
	all := make([][]core.Cell, 0, 3*g.Size)
	all = append(all, g.rows...)
	all = append(all, g.cols...)
	all = append(all, g.boxes...)
	return all
}

// AllUnits returns the same 3*size groups as AllGroupIndices, tagged with
// their UnitType and index.
func (g *Geometry) AllUnits() []Unit {
	units := make([]Unit, 0, 3*g.Size)
	for i, cells := range g.rows {
		units = append(units, Unit{Type: UnitRow, Index: i, Cells: cells})
	}
	for i, cells := range g.cols {
		units = append(units, Unit{Type: UnitCol, Index: i, Cells: cells})
	}
	for i, cells := range g.boxes {
		units = append(units, Unit{Type: UnitBox, Index: i, Cells: cells})
	}
	return units
}

// ArePeers reports whether two distinct cells share a row, column, or box.
func (g *Geometry) ArePeers(a, b core.Cell) bool {
	if a == b {
		return false
	}
	if a.X == b.X || a.Y == b.Y {
		return true
	}
	return g.BoxOf(a.X, a.Y) == g.BoxOf(b.X, b.Y)
}
