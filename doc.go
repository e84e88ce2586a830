// Package gridpath is an in-memory toolkit for shortest-path queries on
// 2D occupancy grids — the kind of map a tile-based game or simulation
// keeps for its world: every cell is either traversable or blocked, and
// agents ask for a route between two cells on demand.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• Grid: a fixed-size occupancy map with bounds-checked lookup,
//		  walkability toggles and 4-/8-directional neighbor enumeration
//		• Region analysis: connected walkable areas via BFS
//		• A*: heap-backed search with a Manhattan heuristic, functional
//		  options and per-query scratch state
//
// ✨ Why choose gridpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed neighbor order pins tie-breaking, so equal
//     queries always return the same path
//   - Pure Go – no cgo, no hidden deps
//   - Query-safe – the grid is read-only during a search; scratch state
//     lives in the query, not on the cells
//
// Everything is organized under two subpackages:
//
//	grid/  — the occupancy map: Grid, Point, Connectivity, region analysis
//	astar/ — the search driver: Pathfinder, FindPath, heuristics, options
//
// Quick ASCII example:
//
//	S . # . .
//	. . # . .
//	. . # . E
//	. . . . .
//
//	A 5×4 grid with a partial wall; FindPath(S→E) detours below the wall.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
