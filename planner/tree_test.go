package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArena(t *testing.T) {
	a := newArena()
	assert.Equal(t, int32(0), a.best(), "an empty tree selects the root")
	assert.Empty(t, a.branch(0))

	x := a.child(0, 2, 5)
	y := a.child(0, 0, 1)
	xy := a.child(x, 0, 3)
	yx := a.child(y, 2, 3)

	assert.Equal(t, 5, a.size())
	assert.Equal(t, node{parent: x, target: 0, depth: 2, visited: 0b101, cost: 8}, a.nodes[xy])
	assert.Equal(t, xy, a.best(), "ties go to the first node created")
	assert.Equal(t, []int{2, 0}, a.branch(xy))
	assert.Equal(t, []int{0, 2}, a.branch(yx))
}
