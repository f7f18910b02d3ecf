package planner

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/chestpath/dijkstra"
	"github.com/katalvlaran/chestpath/gridgraph"
)

// validateOptions rejects a MaxTargets outside 1..HardMaxTargets and fills
// in a nil Logger.
func validateOptions(o *Options) error {
	if o.MaxTargets < 1 || o.MaxTargets > HardMaxTargets {
		return fmt.Errorf("%w: %d", ErrBadMaxTargets, o.MaxTargets)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return nil
}

// ValidatePlan checks that plan is a walk from w.Start() over in-bounds,
// passable, 4-adjacent cells whose cost fits w.Energy().
//
// Errors:
//   - ErrNilWorld if w is nil.
//   - ErrBrokenPlan joined with the dijkstra sentinel for the first bad step.
//   - ErrOverBudget if the walk costs more than w.Energy().
//
// Complexity: O(len(plan)).
func ValidatePlan(w gridgraph.World, plan []gridgraph.Point) error {
	if w == nil {
		return ErrNilWorld
	}
	cost, err := PlanCost(w, w.Start(), plan)
	if err != nil {
		return err
	}
	if cost > w.Energy() {
		return fmt.Errorf("%w: cost %d, energy %d", ErrOverBudget, cost, w.Energy())
	}

	return nil
}

// walk prepends start to plan and sums the cost of every entered cell.
// Out-of-bounds cells count as 0; dijkstra.Validate rejects them afterwards.
func walk(t dijkstra.Terrain, start gridgraph.Point, plan []gridgraph.Point) dijkstra.Path {
	points := make([]gridgraph.Point, 0, len(plan)+1)
	points = append(points, start)
	points = append(points, plan...)
	sum := 0
	for _, p := range plan {
		sum += t.Cost(p)
	}

	return dijkstra.Path{Points: points, Cost: sum}
}
