// Package gridgraph defines core types and options for the grid world.
package gridgraph

import "fmt"

// Point identifies a grid cell by row and column. Equality is by value.
type Point struct {
	Row, Col int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Adjacent reports whether q is one of the four axis-aligned neighbors of p.
func (p Point) Adjacent(q Point) bool {
	return p.Manhattan(q) == 1
}

// String renders the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Offsets4 lists the four axis-aligned neighbor offsets in expansion order:
// up, down, left, right.
var Offsets4 = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// World is a read-only snapshot of the map the planners work on.
//
// Cost returns the price of stepping onto p; 0 marks an impassable cell.
// Targets returns the chests in a deterministic order without duplicates.
// Goal is the number of chests that must be collected; Goal() ≤ len(Targets())
// is a precondition checked by planners, not by the shortest-path engine.
type World interface {
	Cost(p Point) int
	InBounds(p Point) bool
	Start() Point
	Targets() []Point
	Energy() int
	Goal() int
}

// GridOptions carries everything a GridGraph needs besides the cost grid.
type GridOptions struct {
	// Start is the agent's initial cell.
	Start Point
	// Chests are the collectible cells. Duplicates are collapsed.
	Chests []Point
	// Energy is the total movement budget.
	Energy int
	// Goal is the number of chests that must be collected.
	Goal int
}

// DefaultGridOptions returns GridOptions with the start at the origin,
// no chests, zero energy and zero goal.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Start:  Point{},
		Chests: nil,
		Energy: 0,
		Goal:   0,
	}
}

// GridGraph is an immutable World backed by a rectangular cost grid.
// Costs[r][c] holds the price of entering cell (r,c).
type GridGraph struct {
	Width, Height int
	Costs         [][]int
	start         Point
	chests        []Point
	energy        int
	goal          int
}
