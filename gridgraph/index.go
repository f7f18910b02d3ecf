package gridgraph

import (
	"github.com/dhconnelly/rtreego"
)

// chestEntry wraps a chest for R-tree storage.
type chestEntry struct {
	point Point
	order int
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *chestEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// ChestIndex answers "which chests lie within a Manhattan radius" queries.
// It is immutable after construction and safe for concurrent readers.
type ChestIndex struct {
	tree *rtreego.Rtree
	size int
}

// maxRadius caps query radii so box corners never overflow.
const maxRadius = 1 << 30

// pointTolerance gives each chest a tiny box; rtreego rejects zero-length sides.
const pointTolerance = 0.01

// NewChestIndex builds an index over chests. The position of a chest in the
// input slice is remembered so query results keep the caller's order.
func NewChestIndex(chests []Point) *ChestIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for i, p := range chests {
		tree.Insert(&chestEntry{
			point: p,
			order: i,
			bbox:  rtreego.Point{float64(p.Row), float64(p.Col)}.ToRect(pointTolerance),
		})
	}

	return &ChestIndex{tree: tree, size: len(chests)}
}

// Len returns the number of indexed chests.
func (ci *ChestIndex) Len() int { return ci.size }

// Within returns the chests whose Manhattan distance from center is at most
// radius, in insertion order. A negative radius yields nil.
//
// The R-tree is queried with the square circumscribing the diamond, then the
// exact L1 distance is applied.
func (ci *ChestIndex) Within(center Point, radius int) []Point {
	if radius < 0 || ci.size == 0 {
		return nil
	}
	if radius > maxRadius {
		radius = maxRadius
	}
	side := 2*float64(radius) + 2*pointTolerance
	box, err := rtreego.NewRect(
		rtreego.Point{float64(center.Row-radius) - pointTolerance, float64(center.Col-radius) - pointTolerance},
		[]float64{side, side},
	)
	if err != nil {
		return nil
	}

	hits := ci.tree.SearchIntersect(box)
	picked := make([]*chestEntry, 0, len(hits))
	for _, item := range hits {
		entry := item.(*chestEntry)
		if entry.point.Manhattan(center) <= radius {
			picked = append(picked, entry)
		}
	}
	// restore insertion order
	ordered := make([]*chestEntry, ci.size)
	for _, e := range picked {
		ordered[e.order] = e
	}
	out := make([]Point, 0, len(picked))
	for _, e := range ordered {
		if e != nil {
			out = append(out, e.point)
		}
	}

	return out
}
