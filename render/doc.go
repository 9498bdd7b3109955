// Package render paints a solved maze into an RGB byte buffer.
//
// Two modes exist:
//
//   - ModePath paints free cells gray (128,128,128), leaves walls black and
//     draws the backtracked route in green (0,255,0). If the end was never
//     reached the canvas stays entirely black.
//   - ModeHeatMap writes every cell's distance scaled by 255/MaxObserved to
//     all three channels; undiscovered cells stay black.
//
// The Canvas layout is 3 bytes per cell, row-major, matching grid.Mask.
package render
