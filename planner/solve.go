package planner

import (
	"context"
	"fmt"

	"github.com/katalvlaran/chestpath/gridgraph"
)

// Solve validates opts and routes w to the planner named by opts.Algo.
// The caller picks the algorithm; Solve never switches strategies on its own.
//
// Errors: ErrNilWorld, ErrBadMaxTargets, ErrUnsupportedAlgorithm, plus
// whatever the selected planner returns.
func Solve(ctx context.Context, w gridgraph.World, opts Options) (Result, error) {
	if w == nil {
		return Result{}, ErrNilWorld
	}
	if err := validateOptions(&opts); err != nil {
		return Result{}, err
	}

	switch opts.Algo {
	case AlgoGreedy:
		return (&Greedy{opts: opts}).Solve(ctx, w)
	case AlgoExhaustive:
		return (&Exhaustive{opts: opts}).Solve(ctx, w)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, opts.Algo)
	}
}

// New returns the Planner for opts.Algo.
func New(opts Options) (Planner, error) {
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}
	switch opts.Algo {
	case AlgoGreedy:
		return &Greedy{opts: opts}, nil
	case AlgoExhaustive:
		return &Exhaustive{opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, opts.Algo)
	}
}
