package gridgraph

import "github.com/zyedidia/generic/mapset"

// Regions finds all contiguous regions of passable cells (cost ≥ 1) under
// four-directional adjacency. Regions are returned in row-major order of
// their first cell; cells inside a region are in BFS order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) Regions() [][]Point {
	seen := make([]bool, gg.Width*gg.Height)
	var regions [][]Point

	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			p := Point{Row: r, Col: c}
			if !gg.Passable(p) || seen[gg.index(p)] {
				continue
			}
			seen[gg.index(p)] = true
			regions = append(regions, gg.flood(p, seen))
		}
	}

	return regions
}

// flood collects the region containing p with a BFS; p must already be
// marked in seen.
func (gg *GridGraph) flood(p Point, seen []bool) []Point {
	queue := []Point{p}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range gg.Neighbors(u) {
			vi := gg.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}

// ReachableFrom returns every cell an agent standing on p can walk to,
// including p itself. The origin's own cost is never paid, so p is included
// even when it is a wall; its passable neighbors seed the flood fill.
// An out-of-bounds p yields an empty set.
//
// Time:   O(W·H·4).
// Memory: O(W·H).
func (gg *GridGraph) ReachableFrom(p Point) mapset.Set[Point] {
	out := mapset.New[Point]()
	if !gg.InBounds(p) {
		return out
	}
	seen := make([]bool, gg.Width*gg.Height)
	seen[gg.index(p)] = true
	for _, q := range gg.flood(p, seen) {
		out.Put(q)
	}

	return out
}
