// Package maze wires the solver pipeline together:
//
//	luminance → Binarize → Dilate → bfs.Solve → render.Render → encoder
//
// It is the only package that logs. An unreachable exit is reported in the
// Report, not as an error, and the (blank) image is still written.
package maze

import (
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/mazesolver/bfs"
	"github.com/katalvlaran/mazesolver/config"
	"github.com/katalvlaran/mazesolver/grid"
	"github.com/katalvlaran/mazesolver/imageio"
	"github.com/katalvlaran/mazesolver/render"
)

// Request names the input image and the two cells to connect.
type Request struct {
	Input      string
	Start, End grid.Point
}

// Report summarises one solve.
type Report struct {
	Width, Height int
	// Repaired counts 2×2 blocks closed by the wall repairer.
	Repaired int
	// Regions counts 8-connected free areas after repair.
	Regions int
	// SameRegion tells whether start and end lie in one free area.
	SameRegion bool
	// WallCells is the fewest blocked cells separating start from end;
	// only computed when no route exists.
	WallCells int
	Outcome   bfs.Outcome
	// PathLength is the number of cells on the route, start and end included.
	PathLength  int
	MaxDistance uint32
	Expanded    int
	Mode        render.Mode
	Output      string
}

// Solver runs the pipeline with a fixed configuration.
type Solver struct {
	cfg config.Config
	log *log.Logger
}

// New returns a Solver. A nil logger discards all output.
func New(cfg config.Config, logger *log.Logger) *Solver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Solver{cfg: cfg, log: logger}
}

// Mode returns the render mode selected by the configuration.
func (s *Solver) Mode() render.Mode {
	if s.cfg.HeatMap {
		return render.ModeHeatMap
	}

	return render.ModePath
}

// SolveFile decodes req.Input, solves, and writes the image to the configured
// output path.
func (s *Solver) SolveFile(req Request) (*Report, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	lum, err := imageio.Decode(req.Input)
	if err != nil {
		return nil, err
	}
	s.log.Printf("[maze] loaded %s: %dx%d %s", req.Input, lum.Width, lum.Height, lum.Format)

	canvas, rep, err := s.SolveImage(lum, req)
	if err != nil {
		return nil, err
	}
	if err := imageio.Encode(s.cfg.Output, canvas, imageio.EncodeOptions{Quality: s.cfg.JPEGQuality}); err != nil {
		return nil, err
	}
	rep.Output = s.cfg.Output
	s.log.Printf("[maze] wrote %s (%s)", rep.Output, rep.Mode)

	return rep, nil
}

// SolveImage runs the in-memory part of the pipeline on a luminance buffer.
func (s *Solver) SolveImage(lum *imageio.Luminance, req Request) (*render.Canvas, *Report, error) {
	if lum == nil {
		return nil, nil, fmt.Errorf("%w: nil luminance", imageio.ErrDecode)
	}
	mask, err := grid.Binarize(lum.Pix, lum.Width, lum.Height, s.cfg.Threshold)
	if err != nil {
		return nil, nil, err
	}
	rep := &Report{Width: mask.Width, Height: mask.Height, Mode: s.Mode()}

	if s.cfg.Dilate {
		rep.Repaired = grid.Dilate(mask)
		s.log.Printf("[maze] repaired %d thin-wall blocks", rep.Repaired)
	}

	regions := mask.Regions()
	rep.Regions = len(regions)
	rs, re := mask.RegionOf(regions, req.Start), mask.RegionOf(regions, req.End)
	rep.SameRegion = rs >= 0 && rs == re

	var opts []bfs.Option
	if s.cfg.HeatMap && s.cfg.ExhaustiveHeatMap {
		opts = append(opts, bfs.WithExhaustive())
	}
	s.log.Printf("[maze] searching %s -> %s over %d free regions", req.Start, req.End, rep.Regions)
	res, err := bfs.Solve(mask, req.Start, req.End, opts...)
	if err != nil {
		return nil, nil, err
	}
	rep.Outcome = res.Outcome
	rep.MaxDistance = res.MaxObserved
	rep.Expanded = res.Expanded

	if res.Found() {
		rep.PathLength = int(res.EndDistance)
		s.log.Printf("[maze] route found: %d hops, %d cells expanded", res.Hops(), res.Expanded)
	} else {
		s.log.Printf("[maze] no route between %s and %s (same region: %t)", req.Start, req.End, rep.SameRegion)
		if _, rep.WallCells, err = mask.Breach(req.Start, req.End); err != nil {
			return nil, nil, err
		}
		s.log.Printf("[maze] %d wall cells separate the endpoints", rep.WallCells)
	}

	canvas, err := render.Render(mask, res, rep.Mode)
	if err != nil {
		return nil, nil, err
	}

	return canvas, rep, nil
}

// Found reports whether the route was found.
func (r *Report) Found() bool {
	return r != nil && r.Outcome == bfs.Found
}

// Err returns bfs.ErrPathNotFound when the route was not found, for callers
// that treat that as a failure.
func (r *Report) Err() error {
	if r.Found() {
		return nil
	}

	return bfs.ErrPathNotFound
}
