package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/chestpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects malformed inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	ok := [][]int{{1, 1}, {1, 1}}
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"NegativeCost", [][]int{{1, -2}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNegativeCost},
		{"StartOutside", ok, gridgraph.GridOptions{Start: gridgraph.Point{Row: 2}}, gridgraph.ErrStartOutOfBounds},
		{"ChestOutside", ok, gridgraph.GridOptions{Chests: []gridgraph.Point{{Row: 0, Col: 5}}}, gridgraph.ErrChestOutOfBounds},
		{"NegativeEnergy", ok, gridgraph.GridOptions{Energy: -1}, gridgraph.ErrNegativeEnergy},
		{"NegativeGoal", ok, gridgraph.GridOptions{Goal: -1}, gridgraph.ErrNegativeGoal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := []gridgraph.Point{{0, 0}, {1, 2}, {1, 1}}
	for _, p := range valid {
		if !gg.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []gridgraph.Point{{0, -1}, {0, 3}, {2, 1}, {-1, 2}}
	for _, p := range invalid {
		if gg.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

// TestNewGridGraph_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	grid[0][1] = 0
	if got := gg.Cost(gridgraph.Point{Row: 0, Col: 1}); got != 2 {
		t.Errorf("Cost after input mutation = %d; want 2", got)
	}
}

// TestCost_OutOfBoundsIsWall verifies the zero-cost convention outside the grid.
func TestCost_OutOfBoundsIsWall(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{5}}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	if got := gg.Cost(gridgraph.Point{Row: 0, Col: 0}); got != 5 {
		t.Errorf("Cost(0,0) = %d; want 5", got)
	}
	if got := gg.Cost(gridgraph.Point{Row: 1, Col: 0}); got != 0 {
		t.Errorf("Cost(1,0) = %d; want 0", got)
	}
}

// TestTargets_DuplicatesAndCopy verifies chest de-duplication and defensive copies.
func TestTargets_DuplicatesAndCopy(t *testing.T) {
	a, b := gridgraph.Point{Row: 0, Col: 1}, gridgraph.Point{Row: 1, Col: 0}
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1}, {1, 1}}, gridgraph.GridOptions{
		Chests: []gridgraph.Point{a, b, a},
		Energy: 3,
		Goal:   2,
	})
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	got := gg.Targets()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("Targets() = %v; want [%v %v]", got, a, b)
	}
	got[0] = gridgraph.Point{Row: 9, Col: 9}
	if gg.Targets()[0] != a {
		t.Error("Targets() must return a copy")
	}
	if gg.Energy() != 3 || gg.Goal() != 2 {
		t.Errorf("Energy/Goal = %d/%d; want 3/2", gg.Energy(), gg.Goal())
	}
}

// TestNeighbors_Order verifies up, down, left, right order and wall filtering.
func TestNeighbors_Order(t *testing.T) {
	grid := [][]int{
		{1, 1, 1},
		{0, 1, 1},
		{1, 1, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	got := gg.Neighbors(gridgraph.Point{Row: 1, Col: 1})
	want := []gridgraph.Point{{0, 1}, {2, 1}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("Neighbors = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestWith verifies that With swaps start, energy and goal only.
func TestWith(t *testing.T) {
	gg, err := gridgraph.ParseRows([]string{"S.C"}, 5, 1)
	if err != nil {
		t.Fatalf("ParseRows error: %v", err)
	}
	moved, err := gg.With(gridgraph.Point{Row: 0, Col: 1}, 9, 0)
	if err != nil {
		t.Fatalf("With error: %v", err)
	}
	if moved.Start() != (gridgraph.Point{Row: 0, Col: 1}) || moved.Energy() != 9 || moved.Goal() != 0 {
		t.Errorf("With produced start=%v energy=%d goal=%d", moved.Start(), moved.Energy(), moved.Goal())
	}
	if gg.Start() != (gridgraph.Point{}) || gg.Energy() != 5 {
		t.Error("With must not modify the receiver")
	}
	if _, err := gg.With(gridgraph.Point{Row: 3}, 1, 1); !errors.Is(err, gridgraph.ErrStartOutOfBounds) {
		t.Errorf("With out of bounds error = %v; want ErrStartOutOfBounds", err)
	}
}

// TestPoint_Helpers covers Manhattan, Adjacent and String.
func TestPoint_Helpers(t *testing.T) {
	p, q := gridgraph.Point{Row: 1, Col: 2}, gridgraph.Point{Row: 4, Col: 0}
	if got := p.Manhattan(q); got != 5 {
		t.Errorf("Manhattan = %d; want 5", got)
	}
	if !p.Adjacent(gridgraph.Point{Row: 1, Col: 3}) || p.Adjacent(gridgraph.Point{Row: 2, Col: 3}) {
		t.Error("Adjacent must accept only axis-aligned unit steps")
	}
	if p.Adjacent(p) {
		t.Error("a point is not adjacent to itself")
	}
	if got := p.String(); got != "(1,2)" {
		t.Errorf("String = %q; want %q", got, "(1,2)")
	}
}

// TestCoordinate round-trips row-major indices.
func TestCoordinate(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	if got := gg.Coordinate(4); got != (gridgraph.Point{Row: 1, Col: 1}) {
		t.Errorf("Coordinate(4) = %v; want (1,1)", got)
	}
}
