// Package mazesolver finds the shortest route through a maze picture.
//
// The pipeline reads an image, thresholds it into a free/blocked grid,
// closes diagonal leaks in one-pixel walls, runs breadth-first search over
// the 8-connected grid and renders either the route or a distance heat-map.
//
// Packages:
//
//	grid/     binary mask, binarizer, wall repairer, free regions, breach cost
//	bfs/      minimum-hop search, distance field, route backtracking
//	render/   RGB canvas in path or heat-map mode
//	imageio/  decode to luminance, encode by file extension
//	config/   YAML settings with defaults
//	maze/     the whole pipeline with logging
//
// The command lives in cmd/mazesolver:
//
//	mazesolver [flags] IMAGE START_X START_Y END_X END_Y [SAVE_COST_MAP]
package mazesolver
