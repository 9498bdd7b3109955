// Package grid turns a single-channel image into a two-level obstacle mask
// and repairs thin diagonal walls that would let a search leak through.
//
// What:
//
//   - Mask stores one byte per cell, Free (255) or Blocked (0), row-major.
//   - Binarize maps luminance samples to the mask with a strict threshold.
//   - Dilate closes diagonal checkerboard gaps in a single 2×2 sweep.
//   - Regions labels 8-connected areas of free cells.
//
// Why:
//
//   - Photographed mazes alias thin diagonal walls into checkerboards that an
//     8-connected walker can squeeze through; one repair pass seals them.
//   - Every per-cell buffer downstream (distance field, canvas) shares the
//     mask's shape and goes through the same Index helper.
//
// Complexity:
//
//   - Binarize: O(W×H), Memory: O(W×H).
//   - Dilate:   O(W×H), Memory: O(1), in place.
//   - Regions:  O(W×H×8), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrSizeMismatch: sample buffer length differs from width×height.
//   - ErrOutOfBounds: a coordinate lies outside the mask.
package grid
