// Package planner turns a read-only gridgraph.World into an ordered walk that
// collects chests within the world's energy budget.
//
// Two interchangeable strategies satisfy the Planner interface:
//
//   - Greedy repeatedly walks to the nearest remaining chest. It is fast and
//     returns an empty plan as soon as a chest is unreachable or the budget
//     runs out before Goal chests are collected.
//   - Exhaustive enumerates every energy-feasible visiting order over the
//     reachable chests and keeps the one that collects the most. A short
//     result means the budget could not satisfy Goal. The search is
//     exponential in the number of reachable chests and is bounded by
//     Options.MaxTargets.
//
// Plan never fails: infeasibility is an empty slice. Solve returns the same
// walk wrapped in a Result and reports why a plan is empty through sentinel
// errors (ErrInsufficientTargets, ErrUnreachable, ErrEnergyExhausted, ...).
//
// Plans exclude the start cell. Every point is 4-adjacent to the previous one
// (the first to the start), and the walk cost is the sum of the costs of the
// cells it enters. ValidatePlan checks exactly that.
//
// Planners hold only their options, so one value may be shared between
// goroutines. Every call builds and discards its own search state.
package planner
