// File: bfs/example_test.go
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazesolver/bfs"
	"github.com/katalvlaran/mazesolver/grid"
)

// ExampleSolve walks around a wall in a 4×3 maze and prints the distance
// field and the backtracked route.
//
//	. . . .
//	. # # .
//	. . # .
func ExampleSolve() {
	m, _ := grid.FromRows([][]bool{
		{true, true, true, true},
		{true, false, false, true},
		{true, true, false, true},
	})
	res, _ := bfs.Solve(m, grid.Point{X: 0, Y: 2}, grid.Point{X: 3, Y: 2})

	fmt.Println("outcome:", res.Outcome, "hops:", res.Hops())
	for y := 0; y < res.Field.Height; y++ {
		fmt.Println(res.Field.Values[y*res.Field.Width : (y+1)*res.Field.Width])
	}
	path, _ := res.Path()
	fmt.Println("path:", path)

	// Output:
	// outcome: found hops: 5
	// [3 3 4 5]
	// [2 0 0 5]
	// [1 2 0 6]
	// path: [(3,2) (3,1) (2,0) (1,0) (0,1) (0,2)]
}
