// Package grid models a fixed-size 2D occupancy map whose cells are
// either walkable or blocked, for use as the spatial index of a search.
//
// What:
//
//   - Grid wraps a rectangular Width×Height field of walkability flags.
//   - Bounds-checked lookup (Walkable), mutation (SetWalkable) and
//     neighbor enumeration (Neighbors) under Conn4 or Conn8.
//   - Identifies connected walkable regions for reachability pre-checks.
//
// Why:
//
//   - Game maps: tile occupancy, obstacle toggling, route queries.
//   - Simulations: agents navigating a mutable floor plan.
//
// Complexity:
//
//   - Walkable / SetWalkable / Neighbors: O(1).
//   - Regions: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//
// Contract notes:
//
//   - Blocked cells are invisible: Walkable reports false, Neighbors omits
//     them. A search can therefore never target or traverse a blocked cell.
//   - Neighbor order is fixed (N, E, S, W, then NE, SE, SW, NW) and is part
//     of the contract: downstream tie-breaking depends on it.
//
// Errors:
//
//   - ErrZeroDimension: requested dimensions are not positive.
//   - ErrEmptyGrid: input matrix has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
