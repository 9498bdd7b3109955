package grid

// Dilate seals diagonal one-pixel gaps in walls. It sweeps every 2×2 block
// once, columns outer and rows inner, and blocks all four cells of any block
// laid out as a checkerboard:
//
//	B F      F B
//	F B  or  B F
//
// The sweep is not repeated. A rewrite can turn a block that was already
// visited into a checkerboard, and that block stays as it is; call Dilate
// again to catch it.
//
// Returns the number of blocks rewritten. Masks narrower or shorter than two
// cells are left unchanged.
// Complexity: O(W×H), in place.
func Dilate(m *Mask) int {
	if m == nil || m.Width < 2 || m.Height < 2 {
		return 0
	}
	repaired := 0
	for x := 0; x < m.Width-1; x++ {
		for y := 0; y < m.Height-1; y++ {
			tl := m.Cells[m.Index(x, y)]
			tr := m.Cells[m.Index(x+1, y)]
			bl := m.Cells[m.Index(x, y+1)]
			br := m.Cells[m.Index(x+1, y+1)]

			if (tl == Blocked && tr == Free && bl == Free && br == Blocked) ||
				(tl == Free && tr == Blocked && bl == Blocked && br == Free) {
				m.Cells[m.Index(x, y)] = Blocked
				m.Cells[m.Index(x+1, y)] = Blocked
				m.Cells[m.Index(x, y+1)] = Blocked
				m.Cells[m.Index(x+1, y+1)] = Blocked
				repaired++
			}
		}
	}

	return repaired
}
