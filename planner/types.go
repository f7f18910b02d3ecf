package planner

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/chestpath/gridgraph"
)

// Sentinel errors returned by the planner package.
var (
	// ErrNilWorld indicates a nil world snapshot.
	ErrNilWorld = errors.New("planner: world is nil")

	// ErrInsufficientTargets indicates fewer chests than the goal requires.
	ErrInsufficientTargets = errors.New("planner: fewer chests than the goal")

	// ErrUnreachable indicates that none of the remaining chests can be reached.
	ErrUnreachable = errors.New("planner: no remaining chest is reachable")

	// ErrEnergyExhausted indicates that the next chest costs more than the energy left.
	ErrEnergyExhausted = errors.New("planner: energy budget exhausted")

	// ErrTooManyTargets indicates more reachable chests than Options.MaxTargets.
	ErrTooManyTargets = errors.New("planner: too many reachable chests for exhaustive search")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("planner: unsupported algorithm")

	// ErrBadMaxTargets indicates a MaxTargets outside 1..HardMaxTargets.
	ErrBadMaxTargets = errors.New("planner: MaxTargets out of range")

	// ErrBrokenPlan indicates a plan that is not a connected walk over passable cells.
	ErrBrokenPlan = errors.New("planner: plan is not a connected walk")

	// ErrOverBudget indicates a plan that costs more than the world's energy.
	ErrOverBudget = errors.New("planner: plan exceeds the energy budget")
)

const (
	// DefaultMaxTargets bounds exhaustive search unless configured otherwise.
	DefaultMaxTargets = 10

	// HardMaxTargets is the largest supported MaxTargets: visited sets are uint64 masks.
	HardMaxTargets = 64
)

// Algorithm selects the planning strategy used by Solve.
type Algorithm int

const (
	// AlgoGreedy walks to the nearest remaining chest until Goal is met.
	AlgoGreedy Algorithm = iota
	// AlgoExhaustive enumerates every energy-feasible visiting order.
	AlgoExhaustive
)

// String returns the lowercase name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgoGreedy:
		return "greedy"
	case AlgoExhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greedy":
		return AlgoGreedy, nil
	case "exhaustive":
		return AlgoExhaustive, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// Planner is the contract shared by every strategy: an ordered walk that
// excludes the start cell, or an empty slice when no feasible plan exists.
type Planner interface {
	Plan(w gridgraph.World) []gridgraph.Point
}

// Result is a plan together with its cost and the chests it was built to collect.
type Result struct {
	Path      []gridgraph.Point // walk, start excluded
	Cost      int               // sum of entered cell costs
	Collected []gridgraph.Point // chests in visiting order
}

// Options configures the planners and Solve.
//
// Algo       – strategy run by Solve. Default AlgoGreedy.
// MaxTargets – ceiling on reachable chests for exhaustive search (1..64). Default 10.
// Logger     – receives debug records about segments and search size. Default slog.Default().
type Options struct {
	Algo       Algorithm
	MaxTargets int
	Logger     *slog.Logger
}

// Option represents a functional option for configuring planners.
type Option func(*Options)

// WithAlgorithm selects the strategy run by Solve.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algo = a
	}
}

// WithMaxTargets sets the exhaustive search ceiling.
// Values outside 1..HardMaxTargets panic with ErrBadMaxTargets.
func WithMaxTargets(n int) Option {
	return func(o *Options) {
		if n < 1 || n > HardMaxTargets {
			panic(ErrBadMaxTargets.Error())
		}
		o.MaxTargets = n
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Algo:       AlgoGreedy,
		MaxTargets: DefaultMaxTargets,
		Logger:     slog.Default(),
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
