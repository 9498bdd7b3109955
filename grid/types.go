package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrSizeMismatch indicates a sample buffer whose length is not width×height.
	ErrSizeMismatch = errors.New("grid: buffer length does not match dimensions")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Cell values stored in a Mask.
const (
	// Blocked marks a wall cell.
	Blocked byte = 0
	// Free marks a traversable cell.
	Free byte = 255
)

// DefaultThreshold is the luminance level above which a pixel counts as free.
const DefaultThreshold uint8 = 200

// Point is a cell coordinate; X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// neighborOffsets lists the 8 neighbours in scan order: rows top to bottom,
// columns left to right within a row. Solver expansion and path backtracking
// both depend on this order for tie-breaking.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Mask is a row-major binary obstacle grid. Cells[Index(x, y)] is Free or Blocked.
type Mask struct {
	Width, Height int
	Cells         []byte
}
