package planner

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/chestpath/dijkstra"
	"github.com/katalvlaran/chestpath/gridgraph"
)

// PlanCost returns the cost of walking plan from start: the sum of the costs
// of every cell in plan. An empty plan costs 0.
//
// Returns ErrBrokenPlan, joined with the dijkstra sentinel that explains it,
// when a step leaves the grid, jumps, or enters a wall.
func PlanCost(t dijkstra.Terrain, start gridgraph.Point, plan []gridgraph.Point) (int, error) {
	p := walk(t, start, plan)
	if err := dijkstra.Validate(t, p); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBrokenPlan, err)
	}

	return p.Cost, nil
}

// CollectedTargets returns the distinct chests the agent stands on while
// walking plan, in first-visit order. The start cell counts.
func CollectedTargets(w gridgraph.World, plan []gridgraph.Point) []gridgraph.Point {
	if w == nil {
		return nil
	}
	chests := mapset.New[gridgraph.Point]()
	for _, c := range w.Targets() {
		chests.Put(c)
	}

	var out []gridgraph.Point
	visit := func(p gridgraph.Point) {
		if chests.Has(p) {
			chests.Remove(p)
			out = append(out, p)
		}
	}
	visit(w.Start())
	for _, p := range plan {
		visit(p)
	}

	return out
}
