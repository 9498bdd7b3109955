package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for image I/O.
var (
	// ErrDecode wraps any failure to open or decode an input image.
	ErrDecode = errors.New("imageio: cannot decode image")
	// ErrBadDimensions indicates a decoded image with an empty side.
	ErrBadDimensions = errors.New("imageio: image has no pixels")
	// ErrUnsupportedFormat indicates an output extension with no encoder.
	ErrUnsupportedFormat = errors.New("imageio: unsupported output format")
	// ErrBadQuality indicates a JPEG quality outside 1..100.
	ErrBadQuality = errors.New("imageio: jpeg quality must be within 1..100")
	// ErrEncode wraps any failure to create or write an output image.
	ErrEncode = errors.New("imageio: cannot encode image")
)

// DefaultQuality is the JPEG quality used when EncodeOptions.Quality is zero.
const DefaultQuality = 100

// Luminance is a row-major single-channel image, one byte per pixel.
type Luminance struct {
	Width, Height int
	Pix           []byte
	// Format is the decoder name reported by image.Decode ("jpeg", "png", ...).
	Format string
}

// Format names an output encoding.
type Format int

const (
	// FormatJPEG encodes baseline JPEG.
	FormatJPEG Format = iota
	// FormatPNG encodes lossless PNG.
	FormatPNG
	// FormatBMP encodes uncompressed BMP.
	FormatBMP
	// FormatTIFF encodes deflate-compressed TIFF.
	FormatTIFF
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath maps a file extension (case-insensitive) to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// EncodeOptions tunes Encode.
type EncodeOptions struct {
	// Quality is the JPEG quality, 1..100; 0 means DefaultQuality.
	// Other formats ignore it.
	Quality int
}
