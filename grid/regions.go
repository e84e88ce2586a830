package grid

// Regions finds all contiguous regions of walkable cells, according to the
// given connectivity. Returns a slice of regions; each region is a slice of
// Points in BFS discovery order, scanning row by row for seeds.
//
// Two cells in different regions can never be connected by a path, so
// callers may use Regions as a cheap reachability pre-check before running
// a full search.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(conn Connectivity) [][]Point {
	total := g.Width * g.Height
	seen := make([]bool, total)
	var regions [][]Point
	offsets := conn.Offsets()

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i0 := g.Index(x, y)
			if seen[i0] || !g.walkable[i0] {
				continue
			}
			// BFS to collect the region
			queue := []int{i0}
			seen[i0] = true
			var region []Point

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := g.Coordinate(u)
				region = append(region, Point{X: ux, Y: uy})
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !g.Walkable(vx, vy) {
						continue
					}
					vi := g.Index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}
