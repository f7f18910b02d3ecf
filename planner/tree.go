package planner

// noParent marks the root.
const noParent int32 = -1

// node is "arrived at chest target, having visited the chests in visited,
// for a cumulative cost". Children are not stored; the search derives them
// when it expands a node.
type node struct {
	parent  int32  // arena index, noParent at the root
	target  int32  // chest index, noParent at the root
	depth   int32  // chests visited on the branch
	visited uint64 // bit i set when chest i is on the branch
	cost    int    // cumulative cost from the start
}

// arena stores the plan tree in creation order. Index 0 is the root.
type arena struct {
	nodes []node
}

func newArena() *arena {
	return &arena{nodes: []node{{parent: noParent, target: noParent}}}
}

// child appends a node for moving from parent to chest at the given leg cost
// and returns its index.
func (a *arena) child(parent int32, chest int, legCost int) int32 {
	p := a.nodes[parent]
	a.nodes = append(a.nodes, node{
		parent:  parent,
		target:  int32(chest),
		depth:   p.depth + 1,
		visited: p.visited | 1<<uint(chest),
		cost:    p.cost + legCost,
	})

	return int32(len(a.nodes) - 1)
}

// size returns the number of nodes, root included.
func (a *arena) size() int { return len(a.nodes) }

// best returns the first node, in creation order, with the largest depth.
// It returns the root when no chest was visited.
func (a *arena) best() int32 {
	var at int32
	for i := range a.nodes {
		if a.nodes[i].depth > a.nodes[at].depth {
			at = int32(i)
		}
	}

	return at
}

// branch returns the chest indices from the first visit down to node i.
func (a *arena) branch(i int32) []int {
	out := make([]int, a.nodes[i].depth)
	for k := len(out) - 1; i != 0; k-- {
		out[k] = int(a.nodes[i].target)
		i = a.nodes[i].parent
	}

	return out
}
