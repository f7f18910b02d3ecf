package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chestpath/gridgraph"
	"github.com/katalvlaran/chestpath/planner"
)

func pt(r, c int) gridgraph.Point { return gridgraph.Point{Row: r, Col: c} }

// world parses a text map or fails the test.
func world(t testing.TB, energy, goal int, rows ...string) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.ParseRows(rows, energy, goal)
	require.NoError(t, err)

	return gg
}

// A 3×3 open grid with one chest in the far corner.
func TestScenario_OpenGridSingleChest(t *testing.T) {
	w := world(t, 10, 1,
		"S..",
		"...",
		"..C",
	)

	res, err := planner.NewGreedy().Solve(context.Background(), w)
	require.NoError(t, err)
	assert.Len(t, res.Path, 4)
	assert.Equal(t, 4, res.Cost)
	assert.Equal(t, pt(2, 2), res.Path[len(res.Path)-1])
	assert.Equal(t, []gridgraph.Point{pt(2, 2)}, res.Collected)
	require.NoError(t, planner.ValidatePlan(w, res.Path))

	plan := planner.NewExhaustive().Plan(w)
	assert.Len(t, plan, 4)
	cost, err := planner.PlanCost(w, w.Start(), plan)
	require.NoError(t, err)
	assert.Equal(t, 4, cost)
}

// The chest is walled in on every passable side.
func TestScenario_WalledChest(t *testing.T) {
	w := world(t, 10, 1,
		"S..",
		"..#",
		".#C",
	)

	assert.Empty(t, planner.NewGreedy().Plan(w))
	assert.Empty(t, planner.NewExhaustive().Plan(w))

	_, err := planner.NewGreedy().Solve(context.Background(), w)
	assert.ErrorIs(t, err, planner.ErrUnreachable)

	res, err := planner.NewExhaustive().Solve(context.Background(), w)
	require.NoError(t, err, "an empty collection is not an error for exhaustive search")
	assert.Empty(t, res.Collected)
}

// Two chests, only the near one fits the budget.
func TestScenario_OneChestWithinBudget(t *testing.T) {
	rows := []string{"S.C...C"}
	want := []gridgraph.Point{pt(0, 1), pt(0, 2)}

	t.Run("GoalOne", func(t *testing.T) {
		w := world(t, 3, 1, rows...)
		assert.Equal(t, want, planner.NewGreedy().Plan(w))
	})

	t.Run("GoalTwo", func(t *testing.T) {
		w := world(t, 3, 2, rows...)
		_, err := planner.NewGreedy().Solve(context.Background(), w)
		assert.ErrorIs(t, err, planner.ErrEnergyExhausted)
		assert.Empty(t, planner.NewGreedy().Plan(w))

		res, err := planner.NewExhaustive().Solve(context.Background(), w)
		require.NoError(t, err)
		assert.Equal(t, want, res.Path)
		assert.Equal(t, []gridgraph.Point{pt(0, 2)}, res.Collected)
		assert.Equal(t, 2, res.Cost)
	})
}

// The budget equals the best three-chest order but not the greedy one.
func TestScenario_ExhaustiveBeatsGreedy(t *testing.T) {
	// Greedy goes left (1), right (3), then far left (7): 11 > 9.
	// Best order is right (2), left (3), far left (4): exactly 9.
	w := world(t, 9, 3, "C...CS.C")

	_, err := planner.NewGreedy().Solve(context.Background(), w)
	assert.ErrorIs(t, err, planner.ErrEnergyExhausted)
	assert.Empty(t, planner.NewGreedy().Plan(w))

	res, err := planner.NewExhaustive().Solve(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, 9, res.Cost)
	assert.Equal(t, []gridgraph.Point{pt(0, 7), pt(0, 4), pt(0, 0)}, res.Collected)
	assert.Equal(t, []gridgraph.Point{
		pt(0, 6), pt(0, 7),
		pt(0, 6), pt(0, 5), pt(0, 4),
		pt(0, 3), pt(0, 2), pt(0, 1), pt(0, 0),
	}, res.Path)
	require.NoError(t, planner.ValidatePlan(w, res.Path))
}
