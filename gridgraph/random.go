package gridgraph

import (
	"errors"
	"math/rand"
)

// ErrBadRandomConfig indicates a RandomConfig that cannot produce a world.
var ErrBadRandomConfig = errors.New("gridgraph: invalid random grid configuration")

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// RandomConfig describes the shape of a generated world.
type RandomConfig struct {
	Height, Width int
	// WallPercent is the chance (0..100) that a non-start cell is a wall.
	WallPercent int
	// MaxCost is the upper bound (≥1) of passable cell costs.
	MaxCost int
	// Chests is the number of distinct chest cells to place (never on the start).
	Chests int
	Energy int
	Goal   int
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// RandomGridGraph builds a pseudo-random world. The same seed and config always
// produce the same world. Chests are placed on passable cells; the start is
// always passable.
//
// Returns ErrBadRandomConfig when dimensions are not positive, MaxCost < 1,
// WallPercent is outside 0..100, or there are fewer free cells than Chests.
//
// Complexity: O(W×H).
func RandomGridGraph(seed int64, cfg RandomConfig) (*GridGraph, error) {
	if cfg.Height <= 0 || cfg.Width <= 0 || cfg.MaxCost < 1 ||
		cfg.WallPercent < 0 || cfg.WallPercent > 100 || cfg.Chests < 0 {
		return nil, ErrBadRandomConfig
	}
	rng := rngFromSeed(seed)

	start := Point{Row: rng.Intn(cfg.Height), Col: rng.Intn(cfg.Width)}
	costs := make([][]int, cfg.Height)
	var free []Point
	for r := range costs {
		costs[r] = make([]int, cfg.Width)
		for c := range costs[r] {
			p := Point{Row: r, Col: c}
			if p != start && rng.Intn(100) < cfg.WallPercent {
				continue // wall
			}
			costs[r][c] = 1 + rng.Intn(cfg.MaxCost)
			if p != start {
				free = append(free, p)
			}
		}
	}
	if len(free) < cfg.Chests {
		return nil, ErrBadRandomConfig
	}
	// Fisher–Yates prefix: the first cfg.Chests entries become chests.
	for i := 0; i < cfg.Chests; i++ {
		j := i + rng.Intn(len(free)-i)
		free[i], free[j] = free[j], free[i]
	}

	return NewGridGraph(costs, GridOptions{
		Start:  start,
		Chests: free[:cfg.Chests],
		Energy: cfg.Energy,
		Goal:   cfg.Goal,
	})
}
