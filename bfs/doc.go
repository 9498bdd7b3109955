// Package bfs finds minimum-hop routes across a grid.Mask with a
// breadth-first search over the 8-connected free cells.
//
// What
//
//   - Solve seeds the start cell with distance 1 and expands cells in FIFO
//     order, giving every newly discovered free neighbour its parent's
//     distance + 1. A cell is assigned exactly once.
//   - The search stops as soon as the end cell is dequeued (Found) or when
//     the frontier runs dry (NotFound).
//   - Result carries the DistanceField, the running maximum over dequeued
//     cells (used to normalise heat-maps) and the Outcome.
//   - Result.Path walks back from the end cell to the start through strictly
//     decreasing distances.
//
// Cost model
//
//	Diagonal and orthogonal steps both cost one hop, so distances are
//	Chebyshev hop counts, not Euclidean lengths. On an open grid
//	Field[c] == 1 + max(|dx|, |dy|).
//
// Early stop
//
//	Cells still undiscovered when the end is dequeued keep distance 0, and
//	MaxObserved only reflects cells dequeued so far. WithExhaustive keeps
//	going until the frontier is empty.
//
// Determinism
//
//	Neighbours are always visited in grid.NeighborOffsets order, so the
//	field and the backtracked path are reproducible for identical input.
//
// Complexity (N = W×H)
//
//   - Time:   O(N × 8)
//   - Memory: O(N) for the field, the visited set and the frontier.
//
// Usage
//
//	res, err := bfs.Solve(mask, start, end)
//	if err != nil {
//	    // ErrMaskNil, ErrStartOutOfBounds or ErrEndOutOfBounds
//	}
//	if res.Outcome == bfs.Found {
//	    path, _ := res.Path()
//	}
package bfs
