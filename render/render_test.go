package render_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/bfs"
	"github.com/katalvlaran/mazesolver/grid"
	"github.com/katalvlaran/mazesolver/render"
)

func maskOf(t *testing.T, lines ...string) *grid.Mask {
	t.Helper()
	r := make([][]bool, len(lines))
	for y, line := range lines {
		r[y] = make([]bool, len(line))
		for x, ch := range line {
			r[y][x] = ch == '.'
		}
	}
	m, err := grid.FromRows(r)
	require.NoError(t, err)

	return m
}

func pt(x, y int) grid.Point { return grid.Point{X: x, Y: y} }

// pixels returns a per-cell summary: 'G' green, '-' gray, '#' black, '?' other.
func pixels(c *render.Canvas) []string {
	out := make([]string, c.Height)
	for y := 0; y < c.Height; y++ {
		b := make([]byte, c.Width)
		for x := 0; x < c.Width; x++ {
			r, g, bl := c.At(x, y)
			switch {
			case r == 0 && g == 255 && bl == 0:
				b[x] = 'G'
			case r == 128 && g == 128 && bl == 128:
				b[x] = '-'
			case r == 0 && g == 0 && bl == 0:
				b[x] = '#'
			default:
				b[x] = '?'
			}
		}
		out[y] = string(b)
	}

	return out
}

// grays returns the first channel of every cell, asserting the three agree.
func grays(t *testing.T, c *render.Canvas) []uint8 {
	t.Helper()
	out := make([]uint8, 0, c.Width*c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			r, g, b := c.At(x, y)
			require.Equal(t, r, g)
			require.Equal(t, r, b)
			out = append(out, r)
		}
	}

	return out
}

func TestRender_PathMode(t *testing.T) {
	m := maskOf(t,
		".....",
		".###.",
		".....",
	)
	res, err := bfs.Solve(m, pt(0, 1), pt(4, 1))
	require.NoError(t, err)

	c, err := render.Render(m, res, render.ModePath)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"-GGG-",
		"-###G",
		"-----",
	}, pixels(c), "start cell stays gray, walls stay black")
}

func TestRender_PathModeOpenDiagonal(t *testing.T) {
	m := maskOf(t, "...", "...", "...")
	res, err := bfs.Solve(m, pt(0, 0), pt(2, 2))
	require.NoError(t, err)

	c, err := render.Render(m, res, render.ModePath)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"---",
		"-G-",
		"--G",
	}, pixels(c))
}

func TestRender_PathModeStartIsEnd(t *testing.T) {
	m := maskOf(t, ".#", "..")
	res, err := bfs.Solve(m, pt(0, 1), pt(0, 1))
	require.NoError(t, err)

	c, err := render.Render(m, res, render.ModePath)
	require.NoError(t, err)
	assert.Equal(t, []string{"-#", "--"}, pixels(c))
}

// TestRender_PathModeNotFound: an unreached end leaves the canvas black,
// without the gray background.
func TestRender_PathModeNotFound(t *testing.T) {
	m := maskOf(t,
		"....#",
		"...##",
		"..##.",
		".##..",
		"##...",
	)
	res, err := bfs.Solve(m, pt(0, 0), pt(4, 4))
	require.NoError(t, err)
	require.Equal(t, bfs.NotFound, res.Outcome)

	c, err := render.Render(m, res, render.ModePath)
	require.NoError(t, err)
	assert.True(t, c.IsBlank())
	assert.Len(t, c.Pix, 3*5*5)
}

func TestRender_HeatMapLinear(t *testing.T) {
	m := maskOf(t, "...", "...", "...")
	res, err := bfs.Solve(m, pt(0, 0), pt(2, 2))
	require.NoError(t, err)
	require.Equal(t, uint32(3), res.MaxObserved)

	c, err := render.Render(m, res, render.ModeHeatMap)
	require.NoError(t, err)
	assert.Equal(t, []uint8{
		85, 170, 255,
		170, 170, 255,
		255, 255, 255,
	}, grays(t, c))
}

// TestRender_HeatMapNotFound: partial distances are drawn, unreached cells
// and walls are black.
func TestRender_HeatMapNotFound(t *testing.T) {
	m := maskOf(t,
		"..#..",
		"..#..",
	)
	res, err := bfs.Solve(m, pt(0, 0), pt(4, 0))
	require.NoError(t, err)
	require.Equal(t, bfs.NotFound, res.Outcome)

	c, err := render.Render(m, res, render.ModeHeatMap)
	require.NoError(t, err)
	assert.Equal(t, []uint8{
		127, 255, 0, 0, 0,
		255, 255, 0, 0, 0,
	}, grays(t, c))
}

// TestRender_HeatMapSaturates covers cells discovered after the last
// dequeue, whose distance is above MaxObserved.
func TestRender_HeatMapSaturates(t *testing.T) {
	m := maskOf(t, "...", "...")
	res, err := bfs.Solve(m, pt(0, 0), pt(1, 1))
	require.NoError(t, err)
	require.Equal(t, uint32(2), res.MaxObserved)
	require.Equal(t, uint32(3), res.Field.At(2, 0))

	c, err := render.Render(m, res, render.ModeHeatMap)
	require.NoError(t, err)
	assert.Equal(t, []uint8{
		127, 255, 255,
		255, 255, 255,
	}, grays(t, c))
}

func TestHeatMap_ZeroMax(t *testing.T) {
	c := render.NewCanvas(2, 1)
	render.HeatMap(c, &bfs.DistanceField{Width: 2, Height: 1, Values: []uint32{0, 0}}, 0)
	assert.True(t, c.IsBlank())
}

func TestRender_Errors(t *testing.T) {
	m := maskOf(t, "..")
	res, err := bfs.Solve(m, pt(0, 0), pt(1, 0))
	require.NoError(t, err)

	_, err = render.Render(nil, res, render.ModePath)
	assert.ErrorIs(t, err, render.ErrNilInput)
	_, err = render.Render(m, nil, render.ModePath)
	assert.ErrorIs(t, err, render.ErrNilInput)
	_, err = render.Render(m, &bfs.Result{}, render.ModePath)
	assert.ErrorIs(t, err, render.ErrNilInput)

	other := maskOf(t, "...")
	_, err = render.Render(other, res, render.ModeHeatMap)
	assert.ErrorIs(t, err, render.ErrDimensionMismatch)

	_, err = render.Render(m, res, render.Mode(7))
	assert.ErrorIs(t, err, render.ErrUnknownMode)
}

func TestCanvas_ToImage(t *testing.T) {
	c := render.NewCanvas(2, 1)
	c.Set(1, 0, color.RGBA{R: 1, G: 2, B: 3, A: 0})

	img := c.ToImage()
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, img.RGBAAt(1, 0))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "path", render.ModePath.String())
	assert.Equal(t, "heatmap", render.ModeHeatMap.String())
	assert.Equal(t, "Mode(9)", render.Mode(9).String())
}
