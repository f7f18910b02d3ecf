package dijkstra

import "fmt"

// Validate checks the path-with-cost invariants of p against t:
//
//  1. p has at least one point (ErrEmptyPath).
//  2. Every point is inside t (ErrOutOfBounds).
//  3. Consecutive points are 4-adjacent (ErrNotAdjacent).
//  4. No point after the origin is a wall (ErrWall).
//  5. p.Cost equals the sum of the costs of every point after the origin
//     (ErrCostMismatch).
//
// Errors are wrapped with the offending position.
// Complexity: O(len(p.Points)).
func Validate(t Terrain, p Path) error {
	if len(p.Points) == 0 {
		return ErrEmptyPath
	}
	if !t.InBounds(p.Points[0]) {
		return fmt.Errorf("%w: origin %s", ErrOutOfBounds, p.Points[0])
	}

	sum := 0
	for i := 1; i < len(p.Points); i++ {
		prev, cur := p.Points[i-1], p.Points[i]
		if !t.InBounds(cur) {
			return fmt.Errorf("%w: step %d at %s", ErrOutOfBounds, i, cur)
		}
		if !prev.Adjacent(cur) {
			return fmt.Errorf("%w: step %d %s→%s", ErrNotAdjacent, i, prev, cur)
		}
		c := t.Cost(cur)
		if c == 0 {
			return fmt.Errorf("%w: step %d at %s", ErrWall, i, cur)
		}
		sum += c
	}
	if sum != p.Cost {
		return fmt.Errorf("%w: stored %d, walked %d", ErrCostMismatch, p.Cost, sum)
	}

	return nil
}
