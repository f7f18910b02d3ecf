package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chestpath/gridgraph"
)

func TestParseRows_Legend(t *testing.T) {
	gg, err := gridgraph.ParseRows([]string{
		"S.3#",
		"C0.C",
	}, 7, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, gg.Width)
	assert.Equal(t, 2, gg.Height)
	assert.Equal(t, gridgraph.Point{Row: 0, Col: 0}, gg.Start())
	assert.Equal(t, []gridgraph.Point{{Row: 1, Col: 0}, {Row: 1, Col: 3}}, gg.Targets())
	assert.Equal(t, 7, gg.Energy())
	assert.Equal(t, 2, gg.Goal())

	wantCosts := [][]int{
		{1, 1, 3, 0},
		{1, 0, 1, 1},
	}
	assert.Equal(t, wantCosts, gg.Costs)
}

func TestParseRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"Empty", nil, gridgraph.ErrEmptyGrid},
		{"EmptyRow", []string{""}, gridgraph.ErrEmptyGrid},
		{"Ragged", []string{"S..", ".."}, gridgraph.ErrNonRectangular},
		{"NoStart", []string{"..C"}, gridgraph.ErrNoStart},
		{"TwoStarts", []string{"S.S"}, gridgraph.ErrMultipleStarts},
		{"Unknown", []string{"S?C"}, gridgraph.ErrUnknownCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseRows(tc.rows, 1, 0)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseRows_NegativeBudgetRejected(t *testing.T) {
	_, err := gridgraph.ParseRows([]string{"S"}, -1, 0)
	require.ErrorIs(t, err, gridgraph.ErrNegativeEnergy)
}

func TestRows_RoundTrip(t *testing.T) {
	rows := []string{
		"S.3#",
		"C#.C",
		"9..2",
	}
	gg, err := gridgraph.ParseRows(rows, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, rows, gg.Rows())
}
