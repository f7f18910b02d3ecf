package planner

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/chestpath/dijkstra"
	"github.com/katalvlaran/chestpath/gridgraph"
)

// Greedy is the nearest-neighbor planner. It guarantees a feasible plan when
// it returns one, never a cheapest or largest one.
type Greedy struct {
	opts Options
}

var _ Planner = (*Greedy)(nil)

// NewGreedy returns a Greedy planner configured by opts.
func NewGreedy(opts ...Option) *Greedy {
	return &Greedy{opts: NewOptions(opts...)}
}

// Plan returns the greedy walk, or nil when Solve fails.
func (g *Greedy) Plan(w gridgraph.World) []gridgraph.Point {
	res, err := g.Solve(context.Background(), w)
	if err != nil {
		return nil
	}

	return res.Path
}

// Solve collects exactly w.Goal() chests, always walking to the cheapest one
// still uncollected. Each leg is the first path emitted by the engine, so
// ties resolve in engine discovery order.
//
// Errors:
//   - ErrNilWorld if w is nil.
//   - ErrInsufficientTargets if w has fewer chests than w.Goal().
//   - ErrUnreachable if no remaining chest can be reached.
//   - ErrEnergyExhausted if the next leg pushes the spent cost over w.Energy().
//   - ctx.Err() if ctx is done between legs.
//
// Complexity: Goal engine runs, each O(C log C) for C cells explored.
func (g *Greedy) Solve(ctx context.Context, w gridgraph.World) (Result, error) {
	if w == nil {
		return Result{}, ErrNilWorld
	}
	log := g.opts.Logger.With("algo", AlgoGreedy.String())

	remaining := w.Targets()
	goal, energy := w.Goal(), w.Energy()
	if len(remaining) < goal {
		return Result{}, fmt.Errorf("%w: %d chests, goal %d", ErrInsufficientTargets, len(remaining), goal)
	}

	var (
		pos       = w.Start()
		spent     int
		path      []gridgraph.Point
		collected = make([]gridgraph.Point, 0, goal)
	)
	for len(collected) < goal {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		leg, ok := dijkstra.Nearest(w, pos, remaining)
		if !ok {
			return Result{}, fmt.Errorf("%w: %d left from %s", ErrUnreachable, len(remaining), pos)
		}
		spent += leg.Cost
		if spent > energy {
			return Result{}, fmt.Errorf("%w: need %d, have %d", ErrEnergyExhausted, spent, energy)
		}

		// The first point is where the previous leg ended.
		path = append(path, leg.Points[1:]...)
		pos = leg.Destination()
		collected = append(collected, pos)
		remaining = slices.DeleteFunc(remaining, func(p gridgraph.Point) bool { return p == pos })

		log.Debug("leg", "chest", pos.String(), "cost", leg.Cost, "spent", spent)
	}

	return Result{Path: path, Cost: spent, Collected: collected}, nil
}
