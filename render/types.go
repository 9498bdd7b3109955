package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Sentinel errors for rendering.
var (
	// ErrNilInput indicates a nil mask, result or distance field.
	ErrNilInput = errors.New("render: nil input")
	// ErrDimensionMismatch indicates the mask and the distance field differ in shape.
	ErrDimensionMismatch = errors.New("render: mask and distance field dimensions differ")
	// ErrUnknownMode indicates an unsupported Mode value.
	ErrUnknownMode = errors.New("render: unknown mode")
)

// Mode selects what is drawn.
type Mode int

const (
	// ModePath draws the shortest route over a gray/black maze.
	ModePath Mode = iota
	// ModeHeatMap draws the normalised distance field in grayscale.
	ModeHeatMap
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModePath:
		return "path"
	case ModeHeatMap:
		return "heatmap"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Colours used in path mode.
var (
	// Background is the colour of free cells behind the route.
	Background = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	// Route is the colour of cells on the route.
	Route = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// Canvas is a row-major RGB buffer, 3 bytes per cell, zero (black) on creation.
type Canvas struct {
	Width, Height int
	Pix           []byte
}

// NewCanvas allocates a black w×h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{Width: w, Height: h, Pix: make([]byte, 3*w*h)}
}

// offset returns the index of the red channel of (x,y).
func (c *Canvas) offset(x, y int) int {
	return 3 * (y*c.Width + x)
}

// At returns the channels at (x,y).
func (c *Canvas) At(x, y int) (r, g, b uint8) {
	i := c.offset(x, y)

	return c.Pix[i], c.Pix[i+1], c.Pix[i+2]
}

// Set writes col's RGB channels at (x,y); alpha is ignored.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	i := c.offset(x, y)
	c.Pix[i], c.Pix[i+1], c.Pix[i+2] = col.R, col.G, col.B
}

// setGray writes v to all three channels of (x,y).
func (c *Canvas) setGray(x, y int, v uint8) {
	i := c.offset(x, y)
	c.Pix[i], c.Pix[i+1], c.Pix[i+2] = v, v, v
}

// IsBlank reports whether every byte is zero.
func (c *Canvas) IsBlank() bool {
	for _, b := range c.Pix {
		if b != 0 {
			return false
		}
	}

	return true
}

// ToImage copies the canvas into an opaque *image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			si := c.offset(x, y)
			di := img.PixOffset(x, y)
			img.Pix[di+0] = c.Pix[si+0]
			img.Pix[di+1] = c.Pix[si+1]
			img.Pix[di+2] = c.Pix[si+2]
			img.Pix[di+3] = 0xff
		}
	}

	return img
}
