// Package dijkstra implements a lazy, multi-target variant of Dijkstra's
// shortest-path algorithm on a weighted 2D grid.
//
// FindPaths searches from one origin and yields a Path for each requested
// target as soon as that target's distance becomes final. Because cells are
// finalized in nondecreasing cost order, the paths come out cheapest first.
// The sequence stops once every target was emitted or no further cell is
// reachable; unreachable targets are simply never emitted.
//
// Cost model:
//
//   - Moving onto a cell costs Terrain.Cost of that cell; the origin is free.
//   - A cell cost of 0 is a wall. Walls are never entered, even as a target.
//   - Movement is four-directional (up, down, left, right).
//
// Complexity:
//
//   - Time:  O(C log C) for C cells reachable before the last target is found.
//   - Each cell is finalized at most once.
//   - Each relaxation pushes one heap entry (lazy decrease-key), so the heap
//     holds at most 4·C entries.
//   - Space: O(C) for records, the finalized set and the heap.
//
// Notes on implementation choices:
//
//   - Search records are created lazily the first time a cell is seen, so
//     the engine never touches cells beyond the cheapest target it needs.
//   - Frontier selection uses a min-heap ordered by (cost, record creation
//     order); stale heap entries are skipped when popped. Ties resolve in the
//     order cells were first discovered, which keeps results reproducible.
//   - The sequence is pull-based: a consumer that stops ranging abandons the
//     remaining work. Every range over the sequence starts a fresh search.
//
// Example:
//
//	for p := range dijkstra.FindPaths(world, world.Start(), world.Targets()) {
//	    fmt.Println(p.Destination(), p.Cost)
//	}
package dijkstra
