package render

import (
	"fmt"

	"github.com/katalvlaran/mazesolver/bfs"
	"github.com/katalvlaran/mazesolver/grid"
)

// Render draws res over m in the given mode and returns a fresh canvas.
// Returns ErrNilInput, ErrDimensionMismatch or ErrUnknownMode.
func Render(m *grid.Mask, res *bfs.Result, mode Mode) (*Canvas, error) {
	if m == nil || res == nil || res.Field == nil {
		return nil, ErrNilInput
	}
	f := res.Field
	if f.Width != m.Width || f.Height != m.Height || len(f.Values) != len(m.Cells) {
		return nil, fmt.Errorf("%w: mask %dx%d, field %dx%d", ErrDimensionMismatch, m.Width, m.Height, f.Width, f.Height)
	}
	c := NewCanvas(m.Width, m.Height)

	switch mode {
	case ModeHeatMap:
		HeatMap(c, f, res.MaxObserved)
		return c, nil
	case ModePath:
		if !res.Found() {
			return c, nil
		}
		path, err := res.Path()
		if err != nil {
			return nil, err
		}
		PaintMaze(c, m)
		PaintPath(c, path)
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

// HeatMap writes 255*v/maxObserved for every cell to all three channels.
// Cells discovered after the last dequeue can exceed maxObserved; they
// saturate at 255. A zero maxObserved leaves the canvas untouched.
func HeatMap(c *Canvas, f *bfs.DistanceField, maxObserved uint32) {
	if maxObserved == 0 {
		return
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			v := uint64(f.At(x, y)) * 255 / uint64(maxObserved)
			if v > 255 {
				v = 255
			}
			c.setGray(x, y, uint8(v))
		}
	}
}

// PaintMaze colours every free cell with Background; walls keep whatever
// the canvas holds (black on a fresh canvas).
func PaintMaze(c *Canvas, m *grid.Mask) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.IsFree(x, y) {
				c.Set(x, y, Background)
			}
		}
	}
}

// PaintPath colours the route cells with Route. The path runs from the end
// to the start; the final element, the start cell, is not painted.
func PaintPath(c *Canvas, path []grid.Point) {
	for i := 0; i < len(path)-1; i++ {
		c.Set(path[i].X, path[i].Y, Route)
	}
}
