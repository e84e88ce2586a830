// Package astar implements the A* shortest-path algorithm on occupancy grids.
//
// A* expands cells in order of f = g + h, where g is the accumulated cost
// from the start cell and h is a heuristic estimate of the remaining cost
// to the end cell. Cells are finalized (closed) in expansion order; a
// predecessor chain records the best known route to every discovered cell
// and is walked backwards to produce the final path.
//
// Notes on implementation choices:
//
//   - Every step costs 1, orthogonal and diagonal alike. Combined with the
//     default Manhattan heuristic this makes Conn8 results potentially
//     suboptimal (the heuristic overestimates); see Manhattan for details.
//   - The open set is a binary heap ordered by (f, insertion sequence), so
//     equal-f ties always resolve to the earliest-discovered cell. Together
//     with the fixed neighbor order of grid.Connectivity this makes every
//     query fully deterministic.
//   - When a cell is re-reached at exactly its current cost, the existing
//     predecessor is kept (strict-improvement rewrite only), so among
//     equal-length routes the earliest-discovered one is returned.
//   - All per-query state lives in scratch arrays owned by the query, sized
//     to the grid and allocated per call. The Grid itself is read-only
//     during a search, so concurrent queries on an unmodified Grid are safe.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// Cell lifecycle within one query: undiscovered, on the open frontier,
// or finalized in the closed set.
const (
	stateUnseen byte = iota
	stateOpen
	stateClosed
)

// Pathfinder runs A* queries against one bound Grid. It holds a non-owning
// reference: the Grid neither knows about the Pathfinder nor is mutated by
// it. The zero cost of construction makes it natural to keep one Pathfinder
// per Grid for the Grid's lifetime.
type Pathfinder struct {
	g *grid.Grid
}

// New binds a Pathfinder to the given Grid.
// Returns ErrNilGrid if g is nil.
func New(g *grid.Grid) (*Pathfinder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	return &Pathfinder{g: g}, nil
}

// FindPath computes a path from (startX,startY) to (endX,endY) and returns
// it as an ordered sequence of Points from start to end inclusive. It
// accepts functional options to customize the query (WithConnectivity,
// WithHeuristic, WithMaxCost).
//
// All failure modes collapse to an empty result with no error signal:
//
//   - either endpoint out of bounds or blocked,
//   - end unreachable from start,
//   - every route exceeding MaxCost.
//
// Callers distinguish success solely by len(path) > 0. A query whose start
// equals its end succeeds with a single-element path.
//
// Complexity:
//
//   - Time:  O(N log N), N = cells touched by the search
//   - Space: O(W×H) scratch, allocated per call
func (p *Pathfinder) FindPath(startX, startY, endX, endY int, opts ...Option) []grid.Point {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Resolve endpoints. Blocked and out-of-bounds cells are invisible
	//    (grid.Walkable is false for both), so the query fails silently.
	if !p.g.Walkable(startX, startY) || !p.g.Walkable(endX, endY) {
		return nil
	}
	start := grid.Point{X: startX, Y: startY}
	end := grid.Point{X: endX, Y: endY}

	// 3) Prepare fresh per-query scratch. Allocating here rather than on
	//    the Grid means every query starts from zeroed costs and an empty
	//    predecessor chain, and the Grid stays read-only throughout.
	total := p.g.Width * p.g.Height
	r := &runner{
		g:       p.g,
		options: cfg,
		end:     end,
		gScore:  make([]float64, total),
		parent:  make([]int, total),
		state:   make([]byte, total),
		items:   make([]*openItem, total),
		pq:      make(openPQ, 0, total/4+1),
	}

	// 4) Seed the open set with the start cell and run the main loop.
	r.init(start)
	goal, found := r.process()
	if !found {
		return nil
	}

	// 5) Walk the predecessor chain back from the goal.
	return r.reconstruct(goal)
}

// runner holds the mutable scratch state for a single A* query.
type runner struct {
	g       *grid.Grid  // The bound grid; read-only within the query.
	options Options     // Query configuration (connectivity, heuristic, cap).
	end     grid.Point  // Goal cell, resolved and walkable.
	gScore  []float64   // Row-major: accumulated cost from start, valid when state != stateUnseen.
	parent  []int       // Row-major: predecessor cell index, -1 for the start.
	state   []byte      // Row-major: stateUnseen / stateOpen / stateClosed.
	items   []*openItem // Row-major: live heap entry per open cell, nil otherwise.
	pq      openPQ      // Min-heap of open cells ordered by (f, seq).
	seq     int         // Monotonic insertion counter for tie-breaking.
}

// init seeds the scratch state: start gets g=0, h=heuristic(start,end),
// f=h, no predecessor, and becomes the sole member of the open set.
func (r *runner) init(start grid.Point) {
	heap.Init(&r.pq)

	si := r.g.Index(start.X, start.Y)
	r.parent[si] = -1
	r.state[si] = stateOpen

	item := &openItem{
		cell: si,
		g:    0,
		f:    r.options.Heuristic(start, r.end),
		seq:  r.seq,
	}
	r.seq++
	r.items[si] = item
	heap.Push(&r.pq, item)
}

// process is the core A* loop. It repeatedly extracts the open cell with
// the lowest f (earliest-discovered on ties), finalizes it, and relaxes
// its neighbors, until the goal is extracted or the frontier is exhausted.
//
// Returns the goal cell index and true on success; found=false means the
// open set emptied without reaching the end cell.
func (r *runner) process() (goal int, found bool) {
	endIdx := r.g.Index(r.end.X, r.end.Y)
	for r.pq.Len() > 0 {
		// 1) Pop the best open cell.
		item := heap.Pop(&r.pq).(*openItem)
		u := item.cell
		r.items[u] = nil

		// 2) Goal check happens on extraction, before any expansion, so a
		//    start==end query returns without enumerating neighbors.
		if u == endIdx {
			return u, true
		}

		// 3) Finalize u; its cost is now known to be settled.
		r.state[u] = stateClosed

		// 4) Relax all neighbors of u.
		r.relax(u)
	}

	return 0, false
}

// relax examines each walkable neighbor of cell u and attempts to improve
// its cost. Neighbors are produced in the grid's fixed direction order,
// which fixes insertion order and therefore tie-breaking.
func (r *runner) relax(u int) {
	ux, uy := r.g.Coordinate(u)
	var v int
	var tentative float64
	for _, n := range r.g.Neighbors(ux, uy, r.options.Conn) {
		v = r.g.Index(n.X, n.Y)

		// Finalized cells are never reopened: with a heuristic that is
		// consistent for the movement mode their cost cannot improve, and
		// with the historical Manhattan-under-Conn8 pairing the first
		// settled cost is kept as the answer.
		if r.state[v] == stateClosed {
			continue
		}

		// Uniform unit step cost, diagonal moves included.
		tentative = r.gScore[u] + 1

		// Respect the accumulated-cost cap: too-expensive cells are
		// simply not explored.
		if tentative > r.options.MaxCost {
			continue
		}

		if r.state[v] == stateOpen {
			// Strict-improvement rewrite only: on an exact cost tie the
			// existing predecessor is kept, so the earliest-discovered
			// route among equals wins.
			if tentative >= r.gScore[v] {
				continue
			}
			r.gScore[v] = tentative
			r.parent[v] = u
			item := r.items[v]
			item.g = tentative
			item.f = tentative + r.options.Heuristic(n, r.end)
			// seq is deliberately NOT refreshed: an improved cell keeps
			// its original tie-break position.
			heap.Fix(&r.pq, item.heapIdx)

			continue
		}

		// Newly discovered cell: adopt it onto the frontier.
		r.gScore[v] = tentative
		r.parent[v] = u
		r.state[v] = stateOpen
		item := &openItem{
			cell: v,
			g:    tentative,
			f:    tentative + r.options.Heuristic(n, r.end),
			seq:  r.seq,
		}
		r.seq++
		r.items[v] = item
		heap.Push(&r.pq, item)
	}
}

// reconstruct walks the predecessor chain from the goal back to the start
// (the one cell with no predecessor) and returns the path in start-to-end
// order.
func (r *runner) reconstruct(goal int) []grid.Point {
	var path []grid.Point
	for at := goal; at >= 0; at = r.parent[at] {
		x, y := r.g.Coordinate(at)
		path = append(path, grid.Point{X: x, Y: y})
	}
	// Reverse into start-to-end order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
