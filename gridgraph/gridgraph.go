// Package gridgraph provides utilities to treat a 2D grid of integer cell costs
// as a world snapshot. It supports:
//
//   - Four-directional adjacency
//   - Cost lookup and bounds checks by Point
//   - Identification of passable regions
//   - Spatial screening of chests
//
// Cells with cost 0 are walls; every other cell costs its value to enter.
package gridgraph

import "github.com/zyedidia/generic/mapset"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// of non-negative costs. It deep-copies the input to ensure immutability.
// Duplicate chests are collapsed; the first occurrence keeps its position in
// the chest order.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNegativeCost,
// ErrStartOutOfBounds, ErrChestOutOfBounds, ErrNegativeEnergy or ErrNegativeGoal.
// Algorithmic complexity: O(W×H + C) time and memory.
func NewGridGraph(costs [][]int, opts GridOptions) (*GridGraph, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	for _, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, c := range row {
			if c < 0 {
				return nil, ErrNegativeCost
			}
		}
	}
	if opts.Energy < 0 {
		return nil, ErrNegativeEnergy
	}
	if opts.Goal < 0 {
		return nil, ErrNegativeGoal
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], costs[r])
	}
	gg := &GridGraph{
		Width:  w,
		Height: h,
		Costs:  cells,
		start:  opts.Start,
		energy: opts.Energy,
		goal:   opts.Goal,
	}
	if !gg.InBounds(opts.Start) {
		return nil, ErrStartOutOfBounds
	}

	seen := mapset.New[Point]()
	gg.chests = make([]Point, 0, len(opts.Chests))
	for _, p := range opts.Chests {
		if !gg.InBounds(p) {
			return nil, ErrChestOutOfBounds
		}
		if seen.Has(p) {
			continue
		}
		seen.Put(p)
		gg.chests = append(gg.chests, p)
	}

	return gg, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < gg.Height && p.Col >= 0 && p.Col < gg.Width
}

// Cost returns the price of entering p, or 0 when p is outside the grid.
// Complexity: O(1).
func (gg *GridGraph) Cost(p Point) int {
	if !gg.InBounds(p) {
		return 0
	}

	return gg.Costs[p.Row][p.Col]
}

// Passable reports whether p is inside the grid and not a wall.
func (gg *GridGraph) Passable(p Point) bool {
	return gg.Cost(p) > 0
}

// Start returns the agent's initial cell.
func (gg *GridGraph) Start() Point { return gg.start }

// Targets returns a copy of the chest positions in construction order.
func (gg *GridGraph) Targets() []Point {
	out := make([]Point, len(gg.chests))
	copy(out, gg.chests)

	return out
}

// Energy returns the movement budget.
func (gg *GridGraph) Energy() int { return gg.energy }

// Goal returns the number of chests that must be collected.
func (gg *GridGraph) Goal() int { return gg.goal }

// Neighbors returns the in-bounds, passable neighbors of p in Offsets4 order.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(Offsets4))
	for _, d := range Offsets4 {
		q := p.Add(d)
		if gg.Passable(q) {
			out = append(out, q)
		}
	}

	return out
}

// With returns a copy of gg with a different start, energy and goal, sharing
// the cost grid and chest list. Both are never mutated after construction.
func (gg *GridGraph) With(start Point, energy, goal int) (*GridGraph, error) {
	if !gg.InBounds(start) {
		return nil, ErrStartOutOfBounds
	}
	if energy < 0 {
		return nil, ErrNegativeEnergy
	}
	if goal < 0 {
		return nil, ErrNegativeGoal
	}
	cp := *gg
	cp.start, cp.energy, cp.goal = start, energy, goal

	return &cp, nil
}

// index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (gg *GridGraph) index(p Point) int {
	return p.Row*gg.Width + p.Col
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Point {
	return Point{Row: idx / gg.Width, Col: idx % gg.Width}
}
