package planner

import (
	"context"
	"fmt"

	"github.com/katalvlaran/chestpath/dijkstra"
	"github.com/katalvlaran/chestpath/gridgraph"
)

// Exhaustive enumerates every energy-feasible visiting order over the
// reachable chests and keeps the one that collects the most.
//
// Rationale:
//  1. Chests whose Manhattan distance from the start exceeds the energy are
//     dropped through a gridgraph.ChestIndex query. Every passable cell costs
//     at least 1, so such a chest never lies on a feasible branch.
//  2. One engine run from the start yields the start legs; one run per chest
//     yields the chest-to-chest legs. Both runs are capped at the energy that
//     can still be left when the leg begins.
//  3. The plan tree lives in an arena and is grown with an explicit stack:
//     a popped node creates its children in chest order and pushes them, so
//     the last child is expanded first. A child exists for every unvisited
//     chest whose leg keeps the branch within the energy. Nothing else is
//     pruned.
//  4. The winner is the first node, in creation order, with the most chests.
//     Creation stops once a node visits every chest, since no later node can
//     beat or tie it earlier.
//  5. Context cancellation is checked every 4096 expansions.
//
// Complexity:
//   - Engine: (k+1) runs for k reachable chests.
//   - Tree: up to Σ k!/(k-d)! nodes over depths d ≤ k. Options.MaxTargets
//     bounds k; at the default of 10 the tree stays below 10M nodes.
type Exhaustive struct {
	opts Options
}

var _ Planner = (*Exhaustive)(nil)

// NewExhaustive returns an Exhaustive planner configured by opts.
func NewExhaustive(opts ...Option) *Exhaustive {
	return &Exhaustive{opts: NewOptions(opts...)}
}

// Plan returns the walk collecting the most chests within the energy, or nil
// when no chest can be collected or Solve fails.
func (x *Exhaustive) Plan(w gridgraph.World) []gridgraph.Point {
	res, err := x.Solve(context.Background(), w)
	if err != nil {
		return nil
	}

	return res.Path
}

// Solve runs the exhaustive search. A plan collecting fewer than w.Goal()
// chests is a valid result, not an error. A negative energy yields an empty
// result.
//
// Errors:
//   - ErrNilWorld if w is nil.
//   - ErrTooManyTargets if more than MaxTargets chests are reachable within the energy.
//   - ctx.Err() if ctx is done before or during the search.
func (x *Exhaustive) Solve(ctx context.Context, w gridgraph.World) (Result, error) {
	if w == nil {
		return Result{}, ErrNilWorld
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	log := x.opts.Logger.With("algo", AlgoExhaustive.String())
	if w.Energy() < 0 {
		log.Debug("negative energy", "energy", w.Energy())
		return Result{}, nil
	}

	e := exEngine{ctx: ctx, start: w.Start(), energy: w.Energy()}
	e.prepare(w)
	if len(e.chests) > x.opts.MaxTargets {
		return Result{}, fmt.Errorf("%w: %d reachable, limit %d", ErrTooManyTargets, len(e.chests), x.opts.MaxTargets)
	}
	e.buildLegs(w)
	log.Debug("legs ready", "chests", len(w.Targets()), "reachable", len(e.chests))

	if err := e.search(); err != nil {
		return Result{}, err
	}
	best := e.tree.best()
	res := e.result(best)
	log.Debug("search done", "nodes", e.tree.size(), "collected", len(res.Collected), "cost", res.Cost)

	return res, nil
}

// exEngine holds all data for a single exhaustive search.
type exEngine struct {
	ctx    context.Context
	start  gridgraph.Point
	energy int

	chests []gridgraph.Point       // reachable chests in target order
	first  []dijkstra.Path         // first[i]: start → chests[i]
	legs   [][]dijkstra.Path       // legs[i][j]: chests[i] → chests[j]; nil Points when out of reach
	index  map[gridgraph.Point]int // chest → position in chests

	tree  *arena
	steps int // sparse cancellation checks counter
}

// tick reports whether this expansion should check for cancellation.
func (e *exEngine) tick() bool {
	e.steps++

	return e.steps&4095 == 0
}

// prepare collects the chests reachable from the start within the energy,
// together with their start legs.
func (e *exEngine) prepare(w gridgraph.World) {
	if e.energy < 0 {
		return
	}
	candidates := gridgraph.NewChestIndex(w.Targets()).Within(e.start, e.energy)

	found := make(map[gridgraph.Point]dijkstra.Path, len(candidates))
	for p := range dijkstra.FindPaths(w, e.start, candidates, dijkstra.WithMaxCost(e.energy)) {
		found[p.Destination()] = p
	}

	e.index = make(map[gridgraph.Point]int, len(found))
	for _, c := range candidates {
		p, ok := found[c]
		if !ok {
			continue
		}
		e.index[c] = len(e.chests)
		e.chests = append(e.chests, c)
		e.first = append(e.first, p)
	}
}

// buildLegs fills the chest-to-chest table, one engine run per chest.
func (e *exEngine) buildLegs(w gridgraph.World) {
	n := len(e.chests)
	e.legs = make([][]dijkstra.Path, n)
	others := make([]gridgraph.Point, 0, n)
	for i, from := range e.chests {
		e.legs[i] = make([]dijkstra.Path, n)
		others = others[:0]
		for j, to := range e.chests {
			if j != i {
				others = append(others, to)
			}
		}
		left := e.energy - e.first[i].Cost
		if left < 0 {
			continue
		}
		for p := range dijkstra.FindPaths(w, from, others, dijkstra.WithMaxCost(left)) {
			e.legs[i][e.index[p.Destination()]] = p
		}
	}
}

// search builds the plan tree. Nodes are created in traversal order: a popped
// node creates all its children in chest order and pushes them, and the last
// one pushed is expanded next. arena.best then picks the first node of that
// order with the most chests.
func (e *exEngine) search() error {
	e.tree = newArena()
	all := int32(len(e.chests))
	if all == 0 {
		return nil
	}

	stack := []int32{0}
	for len(stack) > 0 {
		if e.tick() {
			if err := e.ctx.Err(); err != nil {
				return err
			}
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := e.tree.nodes[cur]
		for j := range e.chests {
			if nd.visited&(1<<uint(j)) != 0 {
				continue
			}
			leg := e.first[j]
			if cur != 0 {
				leg = e.legs[nd.target][j]
			}
			if leg.Points == nil || nd.cost+leg.Cost > e.energy {
				continue
			}
			c := e.tree.child(cur, j, leg.Cost)
			// Nothing created later can visit more chests.
			if nd.depth+1 == all {
				return nil
			}
			stack = append(stack, c)
		}
	}

	return nil
}

// result stitches the legs of the branch ending at node i. Each leg starts
// where the previous one ended, so its first point is skipped; this also
// drops the start cell.
func (e *exEngine) result(i int32) Result {
	branch := e.tree.branch(i)
	res := Result{
		Cost:      e.tree.nodes[i].cost,
		Collected: make([]gridgraph.Point, 0, len(branch)),
	}
	prev := -1
	for _, c := range branch {
		leg := e.first[c]
		if prev >= 0 {
			leg = e.legs[prev][c]
		}
		res.Path = append(res.Path, leg.Points[1:]...)
		res.Collected = append(res.Collected, e.chests[c])
		prev = c
	}

	return res
}
