// Package gridgraph provides the read-only grid world consumed by the
// shortest-path engine and the planners.
//
// What:
//
//   - Point is a (row, column) cell coordinate; comparable, usable as a map key.
//   - World is the snapshot contract: per-cell cost, bounds, start, chests,
//     energy budget and the number of chests that must be collected.
//   - GridGraph is the concrete, immutable World built from a rectangular
//     [][]int cost grid (0 = wall) or from a text map (ParseRows).
//   - Regions / ReachableFrom flood-fill passable cells.
//   - ChestIndex is an R-tree over chest positions used to screen chests that
//     lie beyond an energy horizon.
//   - RandomGridGraph builds deterministic pseudo-random worlds for tests.
//
// Why:
//
//   - Keep map construction outside of the search core: the engine and the
//     planners only see the World interface.
//   - Game maps and test fixtures read naturally as text rows.
//
// Complexity:
//
//   - NewGridGraph:   O(W×H), Memory: O(W×H).
//   - Regions:        O(W×H×4), Memory: O(W×H).
//   - ReachableFrom:  O(W×H×4), Memory: O(W×H).
//   - ChestIndex.Within: O(log C + k) for k chests in the query box.
//
// Text map legend (ParseRows):
//
//	#, 0   wall (cost 0)
//	.      open cell (cost 1)
//	1..9   cell with that cost
//	S      start (cost 1), exactly one
//	C      chest (cost 1)
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrNegativeCost: malformed cost grid.
//   - ErrStartOutOfBounds, ErrChestOutOfBounds: positions outside the grid.
//   - ErrNegativeEnergy, ErrNegativeGoal: invalid budget or goal.
//   - ErrNoStart, ErrMultipleStarts, ErrUnknownCell: malformed text map.
package gridgraph
