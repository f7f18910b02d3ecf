// Package dijkstra defines core types and configuration options
// for the lazy grid shortest-path search.
//
// Options:
//
//	– MaxCost:    optional cap on cumulative cost; cells beyond it are never finalized.
//	– OnFinalize: hook called whenever a cell's distance becomes final.
//
// Errors (sentinel):
//
//	– ErrBadMaxCost    if MaxCost < 0 (raised as a panic by WithMaxCost).
//	– ErrEmptyPath     if a Path has no points.
//	– ErrNotAdjacent   if two consecutive points are not 4-neighbors.
//	– ErrOutOfBounds   if a point lies outside the terrain.
//	– ErrWall          if a path steps onto a zero-cost cell.
//	– ErrCostMismatch  if Path.Cost differs from the sum of step costs.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/chestpath/gridgraph"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrEmptyPath indicates a Path without points.
	ErrEmptyPath = errors.New("dijkstra: path is empty")

	// ErrNotAdjacent indicates two consecutive path points that are not 4-neighbors.
	ErrNotAdjacent = errors.New("dijkstra: consecutive points are not adjacent")

	// ErrOutOfBounds indicates a path point outside the terrain.
	ErrOutOfBounds = errors.New("dijkstra: point out of bounds")

	// ErrWall indicates a path stepping onto an impassable cell.
	ErrWall = errors.New("dijkstra: path crosses a wall")

	// ErrCostMismatch indicates a stored cost that differs from the walked cost.
	ErrCostMismatch = errors.New("dijkstra: path cost does not match its steps")
)

// Terrain is the part of a world the search needs: per-cell cost
// (0 = impassable) and a bounds predicate.
type Terrain interface {
	Cost(p gridgraph.Point) int
	InBounds(p gridgraph.Point) bool
}

// Path is an ordered route from an origin to a destination, both included,
// together with its total cost. Consecutive points are 4-adjacent and Cost is
// the sum of the costs of every point after the origin.
type Path struct {
	Points []gridgraph.Point
	Cost   int
}

// Origin returns the first point of the path.
func (p Path) Origin() gridgraph.Point { return p.Points[0] }

// Destination returns the last point of the path.
func (p Path) Destination() gridgraph.Point { return p.Points[len(p.Points)-1] }

// Len returns the number of points, endpoints included.
func (p Path) Len() int { return len(p.Points) }

// Options configures the behavior of FindPaths.
//
// MaxCost    – cells whose cumulative cost exceeds MaxCost are never finalized,
//
//	so targets beyond it are never emitted. Must be ≥ 0. Default math.MaxInt.
//
// OnFinalize – called with each cell and its final cost, in finalization order.
type Options struct {
	MaxCost    int
	OnFinalize func(p gridgraph.Point, cost int)
}

// Option represents a functional option for configuring FindPaths.
type Option func(*Options)

// WithMaxCost sets a cumulative cost cap.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is a programming error.
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithOnFinalize installs a hook called whenever a cell's distance becomes final.
// A nil hook is ignored.
func WithOnFinalize(fn func(p gridgraph.Point, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxCost:    math.MaxInt (explore everything reachable).
//   - OnFinalize: no-op.
func DefaultOptions() Options {
	return Options{
		MaxCost:    math.MaxInt,
		OnFinalize: func(gridgraph.Point, int) {},
	}
}
