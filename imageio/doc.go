// Package imageio loads maze pictures as luminance buffers and writes
// rendered canvases back to disk.
//
// Decoding accepts JPEG, PNG and GIF from the standard library plus BMP, TIFF
// and WebP from golang.org/x/image. Colour input is reduced to luminance with
// a gift Grayscale filter. Encoding picks the format from the file extension;
// JPEG defaults to quality 100.
package imageio
