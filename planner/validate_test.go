package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chestpath/dijkstra"
	"github.com/katalvlaran/chestpath/gridgraph"
	"github.com/katalvlaran/chestpath/planner"
)

func TestValidatePlan(t *testing.T) {
	w := world(t, 4, 1,
		"S3C",
		".#.",
	)
	cases := []struct {
		name  string
		plan  []gridgraph.Point
		err   error
		cause error
	}{
		{"Empty", nil, nil, nil},
		{"Valid", []gridgraph.Point{pt(0, 1), pt(0, 2)}, nil, nil},
		{"OverBudget", []gridgraph.Point{pt(0, 1), pt(0, 2), pt(1, 2)}, planner.ErrOverBudget, nil},
		{"Jump", []gridgraph.Point{pt(0, 2)}, planner.ErrBrokenPlan, dijkstra.ErrNotAdjacent},
		{"Wall", []gridgraph.Point{pt(1, 0), pt(1, 1)}, planner.ErrBrokenPlan, dijkstra.ErrWall},
		{"Outside", []gridgraph.Point{pt(-1, 0)}, planner.ErrBrokenPlan, dijkstra.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := planner.ValidatePlan(w, tc.plan)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}

	assert.ErrorIs(t, planner.ValidatePlan(nil, nil), planner.ErrNilWorld)
}

func TestPlanCost(t *testing.T) {
	w := world(t, 0, 0, "S3C")
	cost, err := planner.PlanCost(w, w.Start(), []gridgraph.Point{pt(0, 1), pt(0, 2)})
	require.NoError(t, err)
	assert.Equal(t, 4, cost)

	cost, err = planner.PlanCost(w, pt(0, 2), nil)
	require.NoError(t, err)
	assert.Zero(t, cost)
}

func TestCollectedTargets(t *testing.T) {
	w := world(t, 0, 0, "C.S.C.C")
	plan := []gridgraph.Point{pt(0, 3), pt(0, 4), pt(0, 3), pt(0, 2), pt(0, 1), pt(0, 0)}
	assert.Equal(t, []gridgraph.Point{pt(0, 4), pt(0, 0)}, planner.CollectedTargets(w, plan))
	assert.Nil(t, planner.CollectedTargets(nil, plan))
}
