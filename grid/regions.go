package grid

// Regions finds all 8-connected areas of Free cells.
// Returns a slice of regions; each region lists row-major cell indices in
// discovery order. Regions are ordered by their first cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for seen flags and output.
func (m *Mask) Regions() [][]int {
	seen := make([]bool, m.Width*m.Height)
	var regions [][]int

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i0 := m.Index(x, y)
			if m.Cells[i0] != Free || seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := m.Coordinate(queue[qi])
				for _, d := range neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !m.IsFree(vx, vy) {
						continue
					}
					vi := m.Index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, queue)
		}
	}

	return regions
}

// RegionOf returns the position in regions of the region containing p, or -1
// when p is blocked or out of bounds.
func (m *Mask) RegionOf(regions [][]int, p Point) int {
	if !m.Contains(p) {
		return -1
	}
	target := m.Index(p.X, p.Y)
	for ri, region := range regions {
		for _, idx := range region {
			if idx == target {
				return ri
			}
		}
	}

	return -1
}
