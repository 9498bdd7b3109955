package bfs

import (
	"github.com/katalvlaran/mazesolver/grid"
)

// Path reconstructs the route from the end cell back to the start.
// The first element is End, the last is the cell with distance 1 (Start).
// Each step moves to the 8-neighbour with the smallest nonzero distance below
// the current one; among equals the first in grid.NeighborOffsets order wins.
// Returns ErrPathNotFound if the end was not reached.
func (r *Result) Path() ([]grid.Point, error) {
	if !r.Found() {
		return nil, ErrPathNotFound
	}
	f := r.Field
	cur := r.End
	curVal := f.At(cur.X, cur.Y)
	path := make([]grid.Point, 0, curVal)
	path = append(path, cur)

	for curVal != 1 {
		next, best := cur, curVal
		for _, off := range grid.NeighborOffsets() {
			nx, ny := cur.X+off[0], cur.Y+off[1]
			v := f.At(nx, ny)
			if v != 0 && v < best {
				next, best = grid.Point{X: nx, Y: ny}, v
			}
		}
		if best == curVal {
			// A Found field always has a predecessor; guard against a hand-built one.
			return nil, ErrPathNotFound
		}
		cur, curVal = next, best
		path = append(path, cur)
	}

	return path, nil
}
