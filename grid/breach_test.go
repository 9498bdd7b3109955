package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/grid"
)

func TestBreach(t *testing.T) {
	cases := []struct {
		name       string
		lines      []string
		start, end grid.Point
		cost       int
	}{
		{"Open", []string{"....", "...."}, grid.Point{X: 0, Y: 0}, grid.Point{X: 3, Y: 1}, 0},
		{"SingleWall", []string{"..#..", "..#.."}, grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 0}, 1},
		{"ThickWall", []string{"..##..", "..##.."}, grid.Point{X: 0, Y: 1}, grid.Point{X: 5, Y: 1}, 2},
		{"BlockedStart", []string{"#."}, grid.Point{X: 0, Y: 0}, grid.Point{X: 1, Y: 0}, 1},
		{"SameCell", []string{"."}, grid.Point{X: 0, Y: 0}, grid.Point{X: 0, Y: 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := rows(t, tc.lines...)
			route, cost, err := m.Breach(tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.cost, cost)

			require.NotEmpty(t, route)
			assert.Equal(t, m.Index(tc.start.X, tc.start.Y), route[0])
			assert.Equal(t, m.Index(tc.end.X, tc.end.Y), route[len(route)-1])

			walls := 0
			for i, idx := range route {
				x, y := m.Coordinate(idx)
				if !m.IsFree(x, y) {
					walls++
				}
				if i > 0 {
					px, py := m.Coordinate(route[i-1])
					assert.LessOrEqual(t, abs(x-px), 1)
					assert.LessOrEqual(t, abs(y-py), 1)
				}
			}
			assert.Equal(t, cost, walls, "cost counts the blocked cells on the route")
		})
	}
}

func TestBreach_OutOfBounds(t *testing.T) {
	m := rows(t, "..", "..")
	_, _, err := m.Breach(grid.Point{X: -1, Y: 0}, grid.Point{X: 1, Y: 1})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	_, _, err = m.Breach(grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 1})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
