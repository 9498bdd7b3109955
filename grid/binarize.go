package grid

import "fmt"

// Binarize maps a w×h single-channel buffer to a Mask: a cell is Free iff its
// sample is strictly greater than threshold, so a sample equal to the
// threshold is a wall.
//
// Returns ErrEmptyGrid for non-positive dimensions and ErrSizeMismatch when
// len(pix) != w*h.
// Complexity: O(W×H).
func Binarize(pix []byte, w, h int, threshold uint8) (*Mask, error) {
	m, err := NewMask(w, h)
	if err != nil {
		return nil, err
	}
	if len(pix) != w*h {
		return nil, fmt.Errorf("%w: %d samples for %dx%d", ErrSizeMismatch, len(pix), w, h)
	}
	for i, s := range pix {
		if s > threshold {
			m.Cells[i] = Free
		}
	}

	return m, nil
}
