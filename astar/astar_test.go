package astar_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// PathfinderSuite exercises FindPath under various scenarios.
type PathfinderSuite struct {
	suite.Suite
}

// mustGrid builds an open width×height grid or fails the suite.
func (s *PathfinderSuite) mustGrid(width, height int) *grid.Grid {
	g, err := grid.New(width, height)
	require.NoError(s.T(), err)

	return g
}

// mustPathfinder binds a Pathfinder or fails the suite.
func (s *PathfinderSuite) mustPathfinder(g *grid.Grid) *astar.Pathfinder {
	p, err := astar.New(g)
	require.NoError(s.T(), err)

	return p
}

// assertContiguous verifies consecutive path points differ by exactly one
// permitted direction step for the given connectivity.
func (s *PathfinderSuite) assertContiguous(path []grid.Point, conn grid.Connectivity) {
	s.T().Helper()
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		ok := false
		for _, d := range conn.Offsets() {
			if dx == d[0] && dy == d[1] {
				ok = true
				break
			}
		}
		require.True(s.T(), ok, "step %d: (%d,%d) is not a permitted move", i, dx, dy)
	}
}

// --------------------------------------------------------------------------
// Validation
// --------------------------------------------------------------------------

// TestNewNilGrid verifies New rejects a nil grid with the sentinel error.
func (s *PathfinderSuite) TestNewNilGrid() {
	_, err := astar.New(nil)
	require.ErrorIs(s.T(), err, astar.ErrNilGrid)
}

// TestNegativeMaxCostPanics verifies the option constructor fails fast.
func (s *PathfinderSuite) TestNegativeMaxCostPanics() {
	require.Panics(s.T(), func() {
		astar.WithMaxCost(-1)(&astar.Options{})
	})
}

// --------------------------------------------------------------------------
// Endpoint handling
// --------------------------------------------------------------------------

// TestStartEqualsEnd verifies an identity query returns exactly one point.
func (s *PathfinderSuite) TestStartEqualsEnd() {
	g := s.mustGrid(5, 5)
	p := s.mustPathfinder(g)

	path := p.FindPath(2, 3, 2, 3)
	require.Equal(s.T(), []grid.Point{{X: 2, Y: 3}}, path)
}

// TestInvalidEndpoints verifies out-of-bounds and blocked endpoints fail
// silently with an empty path, never an error or panic.
func (s *PathfinderSuite) TestInvalidEndpoints() {
	g := s.mustGrid(4, 4)
	g.SetWalkable(3, 3, false)
	p := s.mustPathfinder(g)

	cases := []struct {
		name           string
		sx, sy, ex, ey int
	}{
		{"StartOutOfBounds", -1, 0, 2, 2},
		{"EndOutOfBounds", 0, 0, 4, 0},
		{"BothOutOfBounds", -1, -1, 9, 9},
		{"BlockedEnd", 0, 0, 3, 3},
		{"BlockedStart", 3, 3, 0, 0},
	}
	for _, tc := range cases {
		path := p.FindPath(tc.sx, tc.sy, tc.ex, tc.ey)
		require.Empty(s.T(), path, tc.name)
	}
}

// --------------------------------------------------------------------------
// Optimality and shape on open grids
// --------------------------------------------------------------------------

// TestOpenGridManhattanLength verifies that on an unobstructed grid the
// Conn4 path edge count equals the Manhattan distance between endpoints.
func (s *PathfinderSuite) TestOpenGridManhattanLength() {
	g := s.mustGrid(8, 8)
	p := s.mustPathfinder(g)

	cases := []struct {
		sx, sy, ex, ey int
	}{
		{0, 0, 7, 7},
		{3, 1, 3, 6},
		{7, 0, 0, 2},
		{4, 4, 5, 4},
	}
	for _, tc := range cases {
		path := p.FindPath(tc.sx, tc.sy, tc.ex, tc.ey)
		require.NotEmpty(s.T(), path)
		manhattan := abs(tc.ex-tc.sx) + abs(tc.ey-tc.sy)
		require.Len(s.T(), path, manhattan+1)
		require.Equal(s.T(), grid.Point{X: tc.sx, Y: tc.sy}, path[0])
		require.Equal(s.T(), grid.Point{X: tc.ex, Y: tc.ey}, path[len(path)-1])
		s.assertContiguous(path, grid.Conn4)
	}
}

// TestFiveByFiveDiagonalSweep pins a canonical scenario: 5×5 open grid,
// (0,0)→(4,4), Conn4 — a 9-cell path with x+y never decreasing.
func (s *PathfinderSuite) TestFiveByFiveDiagonalSweep() {
	g := s.mustGrid(5, 5)
	p := s.mustPathfinder(g)

	path := p.FindPath(0, 0, 4, 4)
	require.Len(s.T(), path, 9)
	for i := 1; i < len(path); i++ {
		require.GreaterOrEqual(s.T(), path[i].X+path[i].Y, path[i-1].X+path[i-1].Y,
			"x+y must never decrease on an open-grid corner-to-corner route")
	}
	s.assertContiguous(path, grid.Conn4)
}

// TestExactPath3x3 is a tie-break regression: with the normative neighbor
// order (N,E,S,W) and earliest-discovered-wins ties, the 3×3 corner route
// goes east along the top edge, then south along the right edge.
func (s *PathfinderSuite) TestExactPath3x3() {
	g := s.mustGrid(3, 3)
	p := s.mustPathfinder(g)

	want := []grid.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
	}
	require.Equal(s.T(), want, p.FindPath(0, 0, 2, 2))
}

// TestConn8Diagonal verifies that diagonal movement walks the diagonal
// directly with unit step cost.
func (s *PathfinderSuite) TestConn8Diagonal() {
	g := s.mustGrid(3, 3)
	p := s.mustPathfinder(g)

	path := p.FindPath(0, 0, 2, 2, astar.WithConnectivity(grid.Conn8))
	require.Equal(s.T(), []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, path)
	s.assertContiguous(path, grid.Conn8)
}

// --------------------------------------------------------------------------
// Obstacles
// --------------------------------------------------------------------------

// TestColumnWallDetour pins an obstacle scenario: 5×5 grid with column x=2
// blocked for y=0..3, leaving (2,4) open; the route must detour through y=4.
func (s *PathfinderSuite) TestColumnWallDetour() {
	g := s.mustGrid(5, 5)
	for y := 0; y <= 3; y++ {
		g.SetWalkable(2, y, false)
	}
	p := s.mustPathfinder(g)

	path := p.FindPath(0, 0, 4, 0)
	require.NotEmpty(s.T(), path)
	require.Equal(s.T(), grid.Point{X: 0, Y: 0}, path[0])
	require.Equal(s.T(), grid.Point{X: 4, Y: 0}, path[len(path)-1])
	require.Contains(s.T(), path, grid.Point{X: 2, Y: 4}, "only crossing is (2,4)")
	s.assertContiguous(path, grid.Conn4)
	for _, pt := range path {
		require.True(s.T(), g.Walkable(pt.X, pt.Y), "path visits blocked cell (%d,%d)", pt.X, pt.Y)
	}
}

// TestWalledInStart verifies a fully enclosed start yields an empty path.
func (s *PathfinderSuite) TestWalledInStart() {
	g := s.mustGrid(3, 3)
	g.SetWalkable(1, 0, false)
	g.SetWalkable(2, 1, false)
	g.SetWalkable(1, 2, false)
	g.SetWalkable(0, 1, false)
	p := s.mustPathfinder(g)

	require.Empty(s.T(), p.FindPath(1, 1, 0, 0))
}

// TestDiagonalGapEscape verifies that an orthogonal-only wall stops Conn4
// but not Conn8: the diagonal gap at the corners remains open.
func (s *PathfinderSuite) TestDiagonalGapEscape() {
	g := s.mustGrid(3, 3)
	g.SetWalkable(1, 0, false)
	g.SetWalkable(2, 1, false)
	g.SetWalkable(1, 2, false)
	g.SetWalkable(0, 1, false)
	p := s.mustPathfinder(g)

	require.Empty(s.T(), p.FindPath(1, 1, 0, 0))
	path := p.FindPath(1, 1, 0, 0, astar.WithConnectivity(grid.Conn8))
	require.Equal(s.T(), []grid.Point{{X: 1, Y: 1}, {X: 0, Y: 0}}, path)
}

// TestUnreachableAcrossFullWall verifies exhaustion returns empty.
func (s *PathfinderSuite) TestUnreachableAcrossFullWall() {
	g := s.mustGrid(5, 5)
	for y := 0; y < 5; y++ {
		g.SetWalkable(2, y, false)
	}
	p := s.mustPathfinder(g)

	require.Empty(s.T(), p.FindPath(0, 2, 4, 2))
	require.Empty(s.T(), p.FindPath(0, 2, 4, 2, astar.WithConnectivity(grid.Conn8)))
}

// --------------------------------------------------------------------------
// Determinism and mutation
// --------------------------------------------------------------------------

// TestIdempotence verifies identical queries on an unmodified grid return
// identical sequences — scratch state never leaks between calls.
func (s *PathfinderSuite) TestIdempotence() {
	g := s.mustGrid(6, 6)
	g.SetWalkable(3, 2, false)
	g.SetWalkable(3, 3, false)
	p := s.mustPathfinder(g)

	first := p.FindPath(0, 0, 5, 5)
	second := p.FindPath(0, 0, 5, 5)
	require.NotEmpty(s.T(), first)
	require.Equal(s.T(), first, second)
}

// TestMutationBetweenQueries verifies walkability toggles take effect on
// the next query: block the only corridor, then reopen it.
func (s *PathfinderSuite) TestMutationBetweenQueries() {
	// 3×1 corridor: (0,0)—(1,0)—(2,0).
	g := s.mustGrid(3, 1)
	p := s.mustPathfinder(g)

	require.Len(s.T(), p.FindPath(0, 0, 2, 0), 3)

	g.SetWalkable(1, 0, false)
	require.Empty(s.T(), p.FindPath(0, 0, 2, 0))

	g.SetWalkable(1, 0, true)
	require.Len(s.T(), p.FindPath(0, 0, 2, 0), 3)
}

// --------------------------------------------------------------------------
// Options
// --------------------------------------------------------------------------

// TestMaxCostCutoff verifies cells beyond the accumulated-cost cap are not
// explored: a 4-cell corridor needs cost 3 end to end.
func (s *PathfinderSuite) TestMaxCostCutoff() {
	g := s.mustGrid(4, 1)
	p := s.mustPathfinder(g)

	require.Empty(s.T(), p.FindPath(0, 0, 3, 0, astar.WithMaxCost(2)))
	require.Len(s.T(), p.FindPath(0, 0, 3, 0, astar.WithMaxCost(3)), 4)
}

// TestMaxCostZeroIdentity verifies a zero cap still allows the identity
// query: the start itself costs nothing.
func (s *PathfinderSuite) TestMaxCostZeroIdentity() {
	g := s.mustGrid(2, 2)
	p := s.mustPathfinder(g)

	require.Len(s.T(), p.FindPath(1, 1, 1, 1, astar.WithMaxCost(0)), 1)
	require.Empty(s.T(), p.FindPath(0, 0, 1, 1, astar.WithMaxCost(0)))
}

// TestChebyshevConn8 verifies an admissible heuristic can be swapped in for
// diagonal movement: the corner-to-corner route still walks the diagonal.
func (s *PathfinderSuite) TestChebyshevConn8() {
	g := s.mustGrid(4, 4)
	p := s.mustPathfinder(g)

	path := p.FindPath(0, 0, 3, 3,
		astar.WithConnectivity(grid.Conn8),
		astar.WithHeuristic(astar.Chebyshev),
	)
	require.Len(s.T(), path, 4, "unit-cost diagonals cover Chebyshev distance 3 in 3 steps")
	s.assertContiguous(path, grid.Conn8)
}

// TestNilHeuristicFallsBack verifies WithHeuristic(nil) restores Manhattan.
func (s *PathfinderSuite) TestNilHeuristicFallsBack() {
	g := s.mustGrid(3, 3)
	p := s.mustPathfinder(g)

	with := p.FindPath(0, 0, 2, 2, astar.WithHeuristic(nil))
	without := p.FindPath(0, 0, 2, 2)
	require.Equal(s.T(), without, with)
}

func TestPathfinderSuite(t *testing.T) {
	suite.Run(t, new(PathfinderSuite))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
