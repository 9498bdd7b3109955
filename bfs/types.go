// Package bfs defines the outcome, options and distance-field types used by
// the grid breadth-first search.
package bfs

import (
	"errors"

	"github.com/katalvlaran/mazesolver/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrMaskNil is returned if a nil mask is passed.
	ErrMaskNil = errors.New("bfs: mask is nil")

	// ErrStartOutOfBounds is returned when the start cell is outside the mask.
	// It is always wrapped together with grid.ErrOutOfBounds.
	ErrStartOutOfBounds = errors.New("bfs: start cell out of bounds")

	// ErrEndOutOfBounds is returned when the end cell is outside the mask.
	// It is always wrapped together with grid.ErrOutOfBounds.
	ErrEndOutOfBounds = errors.New("bfs: end cell out of bounds")

	// ErrPathNotFound is returned by Result.Path when the end was never reached.
	ErrPathNotFound = errors.New("bfs: no path between start and end")
)

// Outcome tells whether the search reached the end cell.
type Outcome int

const (
	// NotFound means the frontier emptied before the end cell was dequeued.
	NotFound Outcome = iota
	// Found means the end cell was dequeued.
	Found
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o == Found {
		return "found"
	}

	return "not found"
}

// Option configures the search via functional arguments.
type Option func(*Options)

// Options holds hooks and switches for Solve.
type Options struct {
	// OnEnqueue is called when a cell is discovered, with its distance.
	OnEnqueue func(p grid.Point, dist uint32)

	// OnDequeue is called when a cell leaves the frontier, before the end check.
	OnDequeue func(p grid.Point, dist uint32)

	// Exhaustive keeps searching after the end cell is dequeued, so every
	// reachable cell receives a distance.
	Exhaustive bool
}

// DefaultOptions returns Options with no-op hooks and early stop enabled.
func DefaultOptions() Options {
	return Options{
		OnEnqueue:  func(grid.Point, uint32) {},
		OnDequeue:  func(grid.Point, uint32) {},
		Exhaustive: false,
	}
}

// WithOnEnqueue registers a callback run on discovery.
func WithOnEnqueue(fn func(p grid.Point, dist uint32)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback run when a cell is expanded.
func WithOnDequeue(fn func(p grid.Point, dist uint32)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithExhaustive disables the early stop at the end cell.
func WithExhaustive() Option {
	return func(o *Options) {
		o.Exhaustive = true
	}
}

// DistanceField stores one hop distance per cell in the mask's row-major
// layout: 0 = never discovered, 1 = start cell, d = d-1 hops from start.
type DistanceField struct {
	Width, Height int
	Values        []uint32
}

// newDistanceField allocates a zeroed field shaped like m.
func newDistanceField(m *grid.Mask) *DistanceField {
	return &DistanceField{Width: m.Width, Height: m.Height, Values: make([]uint32, m.Width*m.Height)}
}

// At returns the distance at (x,y), or 0 outside the field.
func (f *DistanceField) At(x, y int) uint32 {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0
	}

	return f.Values[y*f.Width+x]
}

// Result holds the outcome of a search:
//   - Outcome: Found or NotFound.
//   - Field: distances of every cell discovered before termination.
//   - MaxObserved: largest distance among dequeued cells.
//   - EndDistance: Field value of the end cell when Found, else 0.
//   - Expanded: number of cells dequeued.
type Result struct {
	Outcome     Outcome
	Field       *DistanceField
	MaxObserved uint32
	EndDistance uint32
	Expanded    int
	Start, End  grid.Point
}

// Found reports whether the end cell was reached.
func (r *Result) Found() bool {
	return r != nil && r.Outcome == Found
}

// Hops returns the number of steps on the shortest route, or -1 if NotFound.
func (r *Result) Hops() int {
	if !r.Found() {
		return -1
	}

	return int(r.EndDistance) - 1
}
