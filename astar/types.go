// Package astar defines core types and configuration options
// for A* shortest-path search on 2D occupancy grids.
//
// A* computes a minimum-cost path from a start cell to an end cell,
// expanding cells in order of f = g + h, where g is the accumulated cost
// from the start and h is a heuristic estimate of the remaining cost.
// Every step costs 1, orthogonal or diagonal alike.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = number of cells touched by the search
//	   • Each cell is finalized at most once: up to N pops from the heap.
//	   • Each relaxation may push or fix a heap entry: up to d·N operations.
//	   • Each heap operation costs O(log N).
//	– Space: O(W×H)
//	   • Row-major scratch arrays for g, parent, and open/closed state.
//
// Options:
//
//	– WithConnectivity: Conn4 (default) or Conn8 neighbor enumeration.
//	– WithHeuristic:    estimate function; Manhattan by default.
//	– WithMaxCost:      cap on accumulated cost; cells beyond are not explored.
//
// Errors (sentinel):
//
//	– ErrNilGrid     if a nil *grid.Grid is passed to New.
//	– ErrBadMaxCost  if MaxCost < 0 (panic from the option constructor).
//
// Example usage:
//
//	g, _ := grid.New(10, 10)
//	g.SetWalkable(5, 5, false)
//	p, _ := astar.New(g)
//	path := p.FindPath(0, 0, 9, 9, astar.WithConnectivity(grid.Conn8))
//	if len(path) == 0 {
//	    // no route: blocked endpoint, out of bounds, or unreachable
//	}
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value,
	// which is not meaningful for a cost threshold.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// Heuristic estimates the remaining cost from cell a to cell b.
// A heuristic is admissible when it never overestimates the true cost;
// A* returns optimal paths only under an admissible heuristic.
type Heuristic func(a, b grid.Point) float64

// Manhattan returns |ax−bx| + |ay−by|: the exact remaining cost under
// Conn4 movement, hence admissible and consistent there.
//
// Under Conn8 it OVERESTIMATES: a diagonal step advances both axes but
// costs 1, so Manhattan may exceed the true cost and diagonal-mode paths
// are not guaranteed optimal. This is the historical behavior of the
// library and deliberately remains the default; pass WithHeuristic(Octile)
// or WithHeuristic(Chebyshev) for an admissible Conn8 estimate.
func Manhattan(a, b grid.Point) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// Chebyshev returns max(|ax−bx|, |ay−by|): the exact remaining cost under
// Conn8 movement with unit-cost diagonals, hence admissible there.
func Chebyshev(a, b grid.Point) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))

	return math.Max(dx, dy)
}

// Octile returns max(dx,dy) + (√2−1)·min(dx,dy): the exact remaining cost
// under Conn8 movement when diagonal steps cost √2. Admissible for unit-cost
// diagonals too (it only undershoots further), but pairs naturally with a
// √2 diagonal charge.
func Octile(a, b grid.Point) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))

	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

// Euclidean returns the straight-line distance √(dx²+dy²). Admissible for
// any movement mode whose steps cover at most their cost in distance.
func Euclidean(a, b grid.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Hypot(dx, dy)
}

// Options configures the behavior of a single FindPath query.
//
// Conn      – neighbor connectivity: Conn4 (orthogonal) or Conn8 (with diagonals).
// Heuristic – remaining-cost estimate; Manhattan by default.
// MaxCost   – cap on accumulated cost; cells whose tentative cost would
//
//	exceed it are not explored. Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Conn      grid.Connectivity // Neighbor enumeration mode
	Heuristic Heuristic         // Remaining-cost estimate
	MaxCost   float64           // Maximum accumulated cost to explore
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithConnectivity selects the neighbor enumeration mode for the query.
// Conn4 expands N, E, S, W; Conn8 additionally expands NE, SE, SW, NW.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// WithHeuristic overrides the remaining-cost estimate for the query.
// Passing nil restores the default (Manhattan).
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			h = Manhattan
		}
		o.Heuristic = h
	}
}

// WithMaxCost sets a maximum accumulated-cost threshold.
// Cells whose tentative cost would exceed this value are not explored.
// Must pass a non-negative value; negative values cause a panic with
// ErrBadMaxCost, signaling invalid configuration early.
// Default (if not set) is +Inf (no cap).
func WithMaxCost(maxCost float64) Option {
	return func(o *Options) {
		if maxCost < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = maxCost
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - Conn:      grid.Conn4 (orthogonal movement only).
//   - Heuristic: Manhattan.
//   - MaxCost:   +Inf (no cost limit; explore all reachable cells).
func DefaultOptions() Options {
	return Options{
		Conn:      grid.Conn4,
		Heuristic: Manhattan,
		MaxCost:   math.Inf(1),
	}
}
