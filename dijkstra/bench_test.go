package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/chestpath/dijkstra"
	"github.com/katalvlaran/chestpath/gridgraph"
)

// BenchmarkFindPaths_AllTargets drains the sequence on a 300×300 random grid
// with 50 chests.
func BenchmarkFindPaths_AllTargets(b *testing.B) {
	gg, err := gridgraph.RandomGridGraph(42, gridgraph.RandomConfig{
		Height: 300, Width: 300, WallPercent: 25, MaxCost: 9, Chests: 50,
	})
	if err != nil {
		b.Fatalf("setup RandomGridGraph failed: %v", err)
	}
	targets := gg.Targets()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range dijkstra.FindPaths(gg, gg.Start(), targets) {
		}
	}
}

// BenchmarkNearest measures the early-exit path on the same grid.
func BenchmarkNearest(b *testing.B) {
	gg, err := gridgraph.RandomGridGraph(42, gridgraph.RandomConfig{
		Height: 300, Width: 300, WallPercent: 25, MaxCost: 9, Chests: 50,
	})
	if err != nil {
		b.Fatalf("setup RandomGridGraph failed: %v", err)
	}
	targets := gg.Targets()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Nearest(gg, gg.Start(), targets)
	}
}
