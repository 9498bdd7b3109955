package imageio

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/mazesolver/render"
)

// Encode writes c to path in the format implied by its extension.
func Encode(path string, c *render.Canvas, opts EncodeOptions) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := EncodeWriter(f, c, format, opts); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return nil
}

// EncodeWriter writes c to w as format.
func EncodeWriter(w io.Writer, c *render.Canvas, format Format, opts EncodeOptions) error {
	if c == nil {
		return fmt.Errorf("%w: nil canvas", ErrEncode)
	}
	img := c.ToImage()

	var err error
	switch format {
	case FormatJPEG:
		q := opts.Quality
		if q == 0 {
			q = DefaultQuality
		}
		if q < 1 || q > 100 {
			return fmt.Errorf("%w: got %d", ErrBadQuality, q)
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return nil
}
