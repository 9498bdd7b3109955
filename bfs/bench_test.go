package bfs_test

import (
	"testing"

	"github.com/katalvlaran/mazesolver/bfs"
	"github.com/katalvlaran/mazesolver/grid"
)

// BenchmarkSolve_Open measures a corner-to-corner search on an open
// 1000×1000 grid; the end is the last cell dequeued.
func BenchmarkSolve_Open(b *testing.B) {
	const n = 1000
	m := openMask(b, n, n)
	start, end := grid.Point{X: 0, Y: 0}, grid.Point{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Solve(m, start, end); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Serpentine measures a search through horizontal walls with
// alternating gaps, forcing the frontier to sweep every row.
func BenchmarkSolve_Serpentine(b *testing.B) {
	const n = 501
	m := openMask(b, n, n)
	for y := 1; y < n; y += 2 {
		gap := n - 1
		if (y/2)%2 == 1 {
			gap = 0
		}
		for x := 0; x < n; x++ {
			if x != gap {
				m.Set(x, y, grid.Blocked)
			}
		}
	}
	start, end := grid.Point{X: 0, Y: 0}, grid.Point{X: 0, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Solve(m, start, end); err != nil {
			b.Fatal(err)
		}
	}
}
