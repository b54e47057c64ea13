package grid

import "slices"

// Regions returns the 4-connected regions of path cells. Regions are ordered
// by their first cell in row-major order; cells within a region are in
// breadth-first order from that cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for the visited flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, len(g.cells))
	var regions [][]Cell

	for i0, open := range g.cells {
		if !open || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var region []Cell

		for qi := 0; qi < len(queue); qi++ {
			c := g.coordinate(queue[qi])
			region = append(region, c)
			for _, d := range Directions {
				n := c.Step(d)
				if !g.At(n) {
					continue
				}
				if ni := g.index(n); !seen[ni] {
					seen[ni] = true
					queue = append(queue, ni)
				}
			}
		}
		regions = append(regions, region)
	}

	return regions
}

// Connected reports whether a and b are path cells joined by a 4-connected
// run of path cells.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.At(a) || !g.At(b) {
		return false
	}
	for _, region := range g.Regions() {
		if slices.Contains(region, a) {
			return slices.Contains(region, b)
		}
	}

	return false
}
