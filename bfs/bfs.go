package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazesolver/grid"
)

// walker encapsulates mutable search state.
type walker struct {
	mask    *grid.Mask
	opts    Options
	queue   []int
	visited []bool
	res     *Result
}

// Solve runs breadth-first search on m from start towards end, applying any
// number of functional Options.
// Returns ErrMaskNil, ErrStartOutOfBounds or ErrEndOutOfBounds for invalid
// input. An unreachable end is not an error: the Result's Outcome is NotFound.
func Solve(m *grid.Mask, start, end grid.Point, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMaskNil
	}
	if !m.Contains(start) {
		return nil, fmt.Errorf("%w: %s outside %dx%d: %w", ErrStartOutOfBounds, start, m.Width, m.Height, grid.ErrOutOfBounds)
	}
	if !m.Contains(end) {
		return nil, fmt.Errorf("%w: %s outside %dx%d: %w", ErrEndOutOfBounds, end, m.Width, m.Height, grid.ErrOutOfBounds)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := m.Width * m.Height
	w := &walker{
		mask:    m,
		opts:    o,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Outcome: NotFound,
			Field:   newDistanceField(m),
			Start:   start,
			End:     end,
		},
	}

	// The start is seeded whatever its mask value.
	w.enqueue(m.Index(start.X, start.Y), 1)
	w.loop(m.Index(end.X, end.Y))

	return w.res, nil
}

// enqueue marks idx visited at distance d and appends it to the frontier.
func (w *walker) enqueue(idx int, d uint32) {
	w.visited[idx] = true
	w.res.Field.Values[idx] = d
	x, y := w.mask.Coordinate(idx)
	w.opts.OnEnqueue(grid.Point{X: x, Y: y}, d)
	w.queue = append(w.queue, idx)
}

// loop drains the frontier until the target is dequeued or nothing is left.
func (w *walker) loop(target int) {
	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		d := w.res.Field.Values[u]
		w.res.Expanded++
		if d > w.res.MaxObserved {
			w.res.MaxObserved = d
		}
		ux, uy := w.mask.Coordinate(u)
		w.opts.OnDequeue(grid.Point{X: ux, Y: uy}, d)

		if u == target && w.res.Outcome == NotFound {
			w.res.Outcome = Found
			w.res.EndDistance = d
			if !w.opts.Exhaustive {
				return
			}
		}
		w.expand(ux, uy, d)
	}
}

// expand enqueues every free, unvisited neighbour of (ux,uy).
func (w *walker) expand(ux, uy int, d uint32) {
	for _, off := range grid.NeighborOffsets() {
		vx, vy := ux+off[0], uy+off[1]
		if !w.mask.IsFree(vx, vy) {
			continue
		}
		vi := w.mask.Index(vx, vy)
		if !w.visited[vi] {
			w.enqueue(vi, d+1)
		}
	}
}
