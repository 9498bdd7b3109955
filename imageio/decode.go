package imageio

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Decode opens path and returns its luminance.
// Any open or decode failure is wrapped in ErrDecode.
func Decode(path string) (*Luminance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	lum, err := DecodeReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lum, nil
}

// DecodeReader decodes any registered format from r and converts it to
// luminance.
func DecodeReader(r io.Reader) (*Luminance, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: decoder returned no image", ErrDecode)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, b.Dx(), b.Dy())
	}

	lum := ToLuminance(img)
	lum.Format = format

	return lum, nil
}

// ToLuminance reduces img to one byte per pixel through gift's Grayscale
// filter. The result is anchored at (0,0) whatever img.Bounds().Min is.
func ToLuminance(img image.Image) *Luminance {
	g := gift.New(gift.Grayscale())
	gray := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(gray, img)

	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	pix := make([]byte, w*h)
	for y := 0; y < h; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+w]
		copy(pix[y*w:(y+1)*w], row)
	}

	return &Luminance{Width: w, Height: h, Pix: pix}
}
