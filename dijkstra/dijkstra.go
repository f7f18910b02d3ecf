package dijkstra

import (
	"iter"
	"math"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/chestpath/gridgraph"
)

// FindPaths searches the terrain t from origin and lazily yields one Path per
// reachable target, in nondecreasing order of cost.
//
// Behavior:
//
//   - Duplicate targets are collapsed; a target is emitted at most once.
//   - If origin is itself a target, it is emitted first as a single-point,
//     zero-cost path.
//   - Targets that are walls, out of bounds or cut off are never emitted;
//     callers detect them by a short sequence, not by an error.
//   - The search stops as soon as all targets were emitted, when no cell is
//     left to expand, or when the consumer stops ranging.
//
// Every range over the returned sequence runs an independent search, so
// ranging twice with the same terrain yields the same paths.
//
// Complexity:
//
//   - Time:  O(C log C) for C cells finalized.
//   - Space: O(C).
func FindPaths(t Terrain, origin gridgraph.Point, targets []gridgraph.Point, opts ...Option) iter.Seq[Path] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func(Path) bool) {
		r := newRunner(t, origin, targets, cfg)
		r.process(yield)
	}
}

// Nearest returns the cheapest path from origin to any of targets.
// The boolean is false when no target is reachable.
func Nearest(t Terrain, origin gridgraph.Point, targets []gridgraph.Point, opts ...Option) (Path, bool) {
	for p := range FindPaths(t, origin, targets, opts...) {
		return p, true
	}

	return Path{}, false
}

// PathTo returns the cheapest path from origin to target.
// The boolean is false when target is unreachable.
func PathTo(t Terrain, origin, target gridgraph.Point, opts ...Option) (Path, bool) {
	return Nearest(t, origin, []gridgraph.Point{target}, opts...)
}

// record is the per-cell search state: best known cost, predecessor on the
// best known route, and the order in which the cell was first discovered.
type record struct {
	cost  int
	prev  gridgraph.Point
	order int
}

// frontierItem is a heap entry. Entries are never updated in place; a
// cheaper route pushes a new entry and the old one is skipped as stale.
type frontierItem struct {
	p     gridgraph.Point
	cost  int
	order int
}

// lessFrontier orders heap entries by cost, then by discovery order.
func lessFrontier(a, b frontierItem) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}

	return a.order < b.order
}

// runner holds the mutable state for a single search.
type runner struct {
	t           Terrain                     // read-only terrain
	options     Options                     // configuration
	origin      gridgraph.Point             // search origin
	records     map[gridgraph.Point]*record // lazily created search records
	finalized   mapset.Set[gridgraph.Point] // cells whose cost is final
	outstanding mapset.Set[gridgraph.Point] // targets not yet emitted
	pq          *heap.Heap[frontierItem]    // min-heap with lazy decrease-key
}

func newRunner(t Terrain, origin gridgraph.Point, targets []gridgraph.Point, cfg Options) *runner {
	r := &runner{
		t:           t,
		options:     cfg,
		origin:      origin,
		records:     make(map[gridgraph.Point]*record),
		finalized:   mapset.New[gridgraph.Point](),
		outstanding: mapset.New[gridgraph.Point](),
		pq:          heap.New[frontierItem](lessFrontier),
	}
	for _, p := range targets {
		r.outstanding.Put(p)
	}
	r.records[origin] = &record{cost: 0, prev: origin, order: 0}

	return r
}

// process is the main loop. frontier always holds the cheapest cell that is
// not yet finalized.
func (r *runner) process(yield func(Path) bool) {
	frontier := r.origin
	for {
		// 1) Emit the frontier if it is an outstanding target.
		if r.outstanding.Has(frontier) {
			r.outstanding.Remove(frontier)
			if !yield(r.path(frontier)) {
				return
			}
		}

		// 2) All targets found.
		if r.outstanding.Size() == 0 {
			return
		}

		// 3) Relax the neighbors and finalize the frontier.
		r.relax(frontier)
		r.finalized.Put(frontier)
		r.options.OnFinalize(frontier, r.records[frontier].cost)

		// 4) Pick the next frontier; none left means the rest is unreachable.
		next, ok := r.nextFrontier()
		if !ok {
			return
		}
		frontier = next
	}
}

// relax examines the four neighbors of u. Out-of-bounds, wall and finalized
// cells are skipped. Unseen cells get a record with an infinite cost and the
// origin as placeholder predecessor; any neighbor reachable strictly cheaper
// through u is updated and pushed onto the heap.
func (r *runner) relax(u gridgraph.Point) {
	base := r.records[u].cost
	for _, d := range gridgraph.Offsets4 {
		v := u.Add(d)
		if !r.t.InBounds(v) || r.finalized.Has(v) {
			continue
		}
		step := r.t.Cost(v)
		if step == 0 {
			continue
		}

		rec, seen := r.records[v]
		if !seen {
			rec = &record{cost: math.MaxInt, prev: r.origin, order: len(r.records)}
			r.records[v] = rec
		}

		// Strict “<” keeps the first-found route among equal-cost ones.
		newCost := base + step
		if newCost >= rec.cost {
			continue
		}
		rec.cost = newCost
		rec.prev = u
		r.pq.Push(frontierItem{p: v, cost: newCost, order: rec.order})
	}
}

// nextFrontier pops the cheapest live heap entry. Entries for finalized cells
// and entries superseded by a cheaper route are discarded. It reports false
// when the heap runs dry or the cheapest cell exceeds MaxCost.
func (r *runner) nextFrontier() (gridgraph.Point, bool) {
	for {
		item, ok := r.pq.Pop()
		if !ok {
			return gridgraph.Point{}, false
		}
		if r.finalized.Has(item.p) || item.cost != r.records[item.p].cost {
			continue // stale
		}
		if item.cost > r.options.MaxCost {
			return gridgraph.Point{}, false
		}

		return item.p, true
	}
}

// path walks predecessor links from target back to the origin and returns
// them in origin-to-target order.
func (r *runner) path(target gridgraph.Point) Path {
	points := []gridgraph.Point{target}
	for at := target; at != r.origin; {
		at = r.records[at].prev
		points = append(points, at)
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	return Path{Points: points, Cost: r.records[target].cost}
}
