package grid

import "fmt"

// NewMask allocates a Width×Height mask with every cell Blocked.
// Returns ErrEmptyGrid if either dimension is not positive.
func NewMask(w, h int) (*Mask, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, w, h)
	}

	return &Mask{Width: w, Height: h, Cells: make([]byte, w*h)}, nil
}

// FromRows builds a mask from rows of booleans (true = free). Handy for
// tests and examples; rows must be non-empty and rectangular.
func FromRows(rows [][]bool) (*Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	m, err := NewMask(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != m.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrSizeMismatch, y, len(row), m.Width)
		}
		for x, free := range row {
			if free {
				m.Cells[m.Index(x, y)] = Free
			}
		}
	}

	return m, nil
}

// InBounds reports whether (x,y) lies within the mask.
func (m *Mask) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Contains reports whether p lies within the mask.
func (m *Mask) Contains(p Point) bool {
	return m.InBounds(p.X, p.Y)
}

// Index maps (x,y) to the row-major offset y*Width + x.
// Every per-cell buffer of the same shape shares this layout.
func (m *Mask) Index(x, y int) int {
	return y*m.Width + x
}

// Coordinate converts a row-major offset back to (x,y).
func (m *Mask) Coordinate(idx int) (x, y int) {
	return idx % m.Width, idx / m.Width
}

// IsFree reports whether (x,y) is in bounds and traversable.
func (m *Mask) IsFree(x, y int) bool {
	return m.InBounds(x, y) && m.Cells[m.Index(x, y)] == Free
}

// Set writes v at (x,y). Out-of-bounds writes are ignored.
func (m *Mask) Set(x, y int, v byte) {
	if m.InBounds(x, y) {
		m.Cells[m.Index(x, y)] = v
	}
}

// NeighborOffsets returns the 8-neighbour (dx,dy) offsets in scan order.
func NeighborOffsets() [8][2]int {
	return neighborOffsets
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	cells := make([]byte, len(m.Cells))
	copy(cells, m.Cells)

	return &Mask{Width: m.Width, Height: m.Height, Cells: cells}
}

// FreeCount returns the number of traversable cells.
func (m *Mask) FreeCount() int {
	n := 0
	for _, c := range m.Cells {
		if c == Free {
			n++
		}
	}

	return n
}
