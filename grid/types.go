// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrZeroDimension indicates a requested grid width or height ≤ 0.
	ErrZeroDimension = errors.New("grid: width and height must be positive")
	// ErrEmptyGrid indicates input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input matrix must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, E, S, W, then NE, SE, SW, NW.
	Conn8
)

// Neighbor offsets per connectivity, in normative enumeration order.
// The order is part of the contract: search tie-breaking downstream depends
// on the sequence in which neighbors are produced, so Conn8 lists the four
// orthogonal directions first and the diagonals after them.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{
		{0, -1}, {1, 0}, {0, 1}, {-1, 0},
		{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
	}
)

// Offsets returns the (dx,dy) neighbor offsets for this connectivity,
// in normative enumeration order. The returned slice must not be mutated.
// Complexity: O(1).
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}

// Point is a cell coordinate on a Grid. Paths are sequences of Points.
type Point struct {
	X, Y int
}

// Grid is a fixed-size rectangular occupancy map. Every cell is either
// walkable or blocked; all cells start walkable. Dimensions are immutable
// after construction; only walkability may change, via SetWalkable.
//
// The Grid carries no per-cell search state: searches keep their own
// scratch, so the Grid is read-only for the duration of a query.
type Grid struct {
	Width, Height int
	walkable      []bool // row-major, y*Width+x
}
