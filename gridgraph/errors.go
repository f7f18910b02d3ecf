package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell cost below zero.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrStartOutOfBounds indicates the start position lies outside the grid.
	ErrStartOutOfBounds = errors.New("gridgraph: start position out of bounds")
	// ErrChestOutOfBounds indicates a chest position lies outside the grid.
	ErrChestOutOfBounds = errors.New("gridgraph: chest position out of bounds")
	// ErrNegativeEnergy indicates a negative energy budget.
	ErrNegativeEnergy = errors.New("gridgraph: energy must be non-negative")
	// ErrNegativeGoal indicates a negative required chest count.
	ErrNegativeGoal = errors.New("gridgraph: goal must be non-negative")
	// ErrNoStart indicates a text map without an 'S' cell.
	ErrNoStart = errors.New("gridgraph: map has no start cell")
	// ErrMultipleStarts indicates a text map with more than one 'S' cell.
	ErrMultipleStarts = errors.New("gridgraph: map has more than one start cell")
	// ErrUnknownCell indicates a rune outside the text map legend.
	ErrUnknownCell = errors.New("gridgraph: unknown map cell")
)
