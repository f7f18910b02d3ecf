// Package chestpath plans routes for an agent that collects chests on a
// weighted 2-D grid within a finite energy budget.
//
// The module is organized in small packages, leaves first:
//
//	gridgraph/     — Point, the read-only World snapshot, GridGraph, text maps,
//	                 passable regions, a chest R-tree and seeded random worlds
//	dijkstra/      — lazy multi-target shortest paths, cheapest target first
//	planner/       — Greedy (nearest chest first) and Exhaustive (every feasible
//	                 visiting order) behind one Planner interface, plus Solve
//	scenario/      — YAML scenario files
//	cmd/chestplan/ — command-line front end (plan, inspect, generate)
//
// Cost model: entering a cell costs its value, the start cell is free, and a
// cost of 0 is a wall. Movement is four-directional.
//
// Quick example:
//
//	w, _ := gridgraph.ParseRows([]string{
//	    "S..#C",
//	    ".#...",
//	    "..C..",
//	}, 12, 2)
//	plan := planner.NewGreedy().Plan(w) // walk excluding the start, or nil
//
// See examples/ for scenario files accepted by chestplan.
package chestpath
