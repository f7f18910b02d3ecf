package gridgraph

import "fmt"

// ParseRows builds a GridGraph from a text map, one string per row.
// See the package documentation for the legend. Rows must have equal length.
// Chests are ordered row-major.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell (wrapped with the
// offending rune and position), ErrNoStart, ErrMultipleStarts, or any error
// from NewGridGraph.
func ParseRows(rows []string, energy, goal int) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	opts := GridOptions{Energy: energy, Goal: goal}
	costs := make([][]int, len(rows))
	starts := 0
	for r, line := range rows {
		cells := []rune(line)
		if len(cells) != len([]rune(rows[0])) {
			return nil, ErrNonRectangular
		}
		costs[r] = make([]int, len(cells))
		for c, ch := range cells {
			p := Point{Row: r, Col: c}
			switch {
			case ch == '#' || ch == '0':
				costs[r][c] = 0
			case ch == '.':
				costs[r][c] = 1
			case ch >= '1' && ch <= '9':
				costs[r][c] = int(ch - '0')
			case ch == 'S':
				costs[r][c] = 1
				opts.Start = p
				starts++
			case ch == 'C':
				costs[r][c] = 1
				opts.Chests = append(opts.Chests, p)
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrUnknownCell, ch, p)
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, ErrMultipleStarts
	}

	return NewGridGraph(costs, opts)
}

// Rows renders gg back into the text map legend. Cells with cost 1 render as
// '.', costs above 9 render as '9', chests render as 'C' whatever their cost.
// The start wins over a chest on the same cell.
func (gg *GridGraph) Rows() []string {
	grid := make([][]rune, gg.Height)
	for r := 0; r < gg.Height; r++ {
		grid[r] = make([]rune, gg.Width)
		for c := 0; c < gg.Width; c++ {
			switch v := gg.Costs[r][c]; {
			case v == 0:
				grid[r][c] = '#'
			case v == 1:
				grid[r][c] = '.'
			case v > 9:
				grid[r][c] = '9'
			default:
				grid[r][c] = rune('0' + v)
			}
		}
	}
	for _, p := range gg.chests {
		grid[p.Row][p.Col] = 'C'
	}
	grid[gg.start.Row][gg.start.Col] = 'S'

	out := make([]string, gg.Height)
	for r := range grid {
		out[r] = string(grid[r])
	}

	return out
}
