// Package grid provides a fixed-size 2D occupancy map for path queries.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-checked walkability lookup and mutation
//   - Neighbor enumeration in a fixed, documented direction order
//   - Identification of connected walkable regions
//
// Cells are walkable by default; blocked cells are invisible to lookups,
// so a search can never target or traverse them.
package grid

// New constructs a Grid of the given dimensions with every cell walkable.
// Returns ErrZeroDimension if width or height is not positive.
// Algorithmic complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrZeroDimension
	}
	cells := make([]bool, width*height)
	for i := range cells {
		cells[i] = true
	}

	return &Grid{Width: width, Height: height, walkable: cells}, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D bool slice,
// where cells[y][x] == true means walkable. The input is copied, so later
// mutation of the source slice does not affect the Grid.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	flat := make([]bool, w*h)
	for y := 0; y < h; y++ {
		copy(flat[y*w:(y+1)*w], cells[y])
	}

	return &Grid{Width: w, Height: h, walkable: flat}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Walkable reports whether (x,y) is in bounds AND walkable. Blocked and
// out-of-bounds cells are indistinguishable to callers: both are simply
// not valid search targets.
// Complexity: O(1).
func (g *Grid) Walkable(x, y int) bool {
	return g.InBounds(x, y) && g.walkable[g.Index(x, y)]
}

// SetWalkable sets the walkability flag of cell (x,y). Out-of-bounds
// coordinates are ignored; there are no side effects beyond the flag.
// Complexity: O(1).
func (g *Grid) SetWalkable(x, y int, walkable bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.walkable[g.Index(x, y)] = walkable
}

// Neighbors returns the in-bounds, walkable neighbors of (x,y) under the
// given connectivity, in the normative direction order (N, E, S, W, then
// NE, SE, SW, NW for Conn8). Blocked neighbors are omitted, not returned
// as blocked — callers only ever see traversable cells.
// Complexity: O(1) (at most 8 probes).
func (g *Grid) Neighbors(x, y int, conn Connectivity) []Point {
	offsets := conn.Offsets()
	out := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if g.Walkable(nx, ny) {
			out = append(out, Point{X: nx, Y: ny})
		}
	}

	return out
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
