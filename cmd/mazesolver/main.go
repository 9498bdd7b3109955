// Command mazesolver finds the shortest route through a maze picture and
// writes it, or the distance heat-map, to an image file.
//
//	mazesolver [flags] IMAGE START_X START_Y END_X END_Y [SAVE_COST_MAP]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/katalvlaran/mazesolver/config"
	"github.com/katalvlaran/mazesolver/grid"
	"github.com/katalvlaran/mazesolver/maze"
)

// Exit statuses.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// errUsage marks invocation problems that should print the usage text.
var errUsage = errors.New("mazesolver: bad invocation")

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run parses args, solves, and returns the process exit status.
func run(args []string, stderr io.Writer) int {
	logger := log.New(stderr, "", log.LstdFlags)

	cfg, req, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			usage(stderr)
			return exitUsage
		}
		return exitFailure
	}

	rep, err := maze.New(cfg, logger).SolveFile(req)
	if err != nil {
		logger.Printf("[mazesolver] %v", err)
		return exitFailure
	}
	if !rep.Found() {
		logger.Printf("[mazesolver] solution to the maze not found; %s left blank", rep.Output)
		return exitOK
	}
	logger.Printf("[mazesolver] path of %d cells saved to %s", rep.PathLength, rep.Output)

	return exitOK
}

// parseArgs builds the configuration and request from the command line.
// Flag values override the config file, which overrides the defaults.
func parseArgs(args []string, stderr io.Writer) (config.Config, maze.Request, error) {
	fs := flag.NewFlagSet("mazesolver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	cfgPath := fs.String("config", "", "YAML configuration file")
	output := fs.String("o", "", "output image (.jpg, .png, .bmp, .tif)")
	threshold := fs.Int("threshold", int(grid.DefaultThreshold), "luminance above which a pixel is free (0..255)")
	noDilate := fs.Bool("no-dilate", false, "skip thin-wall repair")
	heatmap := fs.Bool("heatmap", false, "save the distance heat-map instead of the path")
	exhaustive := fs.Bool("exhaustive", false, "shade every reachable cell in heat-map mode")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config.Config{}, maze.Request{}, err
		}
		return config.Config{}, maze.Request{}, fmt.Errorf("%w: %v", errUsage, err)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return config.Config{}, maze.Request{}, err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = *output
		case "threshold":
			if *threshold < 0 || *threshold > 255 {
				flagErr = fmt.Errorf("%w: threshold %d not within 0..255", errUsage, *threshold)
				return
			}
			cfg.Threshold = uint8(*threshold)
		case "no-dilate":
			cfg.Dilate = !*noDilate
		case "heatmap":
			cfg.HeatMap = *heatmap
		case "exhaustive":
			cfg.ExhaustiveHeatMap = *exhaustive
		}
	})
	if flagErr != nil {
		return config.Config{}, maze.Request{}, flagErr
	}

	pos := fs.Args()
	if len(pos) < 5 {
		return config.Config{}, maze.Request{}, fmt.Errorf("%w: not enough input arguments", errUsage)
	}
	// A sixth positional argument of any value selects the heat-map.
	if len(pos) > 5 {
		cfg.HeatMap = true
	}

	coords := make([]int, 4)
	for i, s := range pos[1:5] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return config.Config{}, maze.Request{}, fmt.Errorf("%w: coordinate %q is not an integer", errUsage, s)
		}
		coords[i] = v
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, maze.Request{}, err
	}

	return cfg, maze.Request{
		Input: pos[0],
		Start: grid.Point{X: coords[0], Y: coords[1]},
		End:   grid.Point{X: coords[2], Y: coords[3]},
	}, nil
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: mazesolver [flags] IMAGE START_X START_Y END_X END_Y [SAVE_COST_MAP]

Finds the shortest path through the maze in IMAGE and saves it to output.jpg
(or the file given with -o).

  START_X/Y      pixel coordinates of the maze entrance
  END_X/Y        pixel coordinates of the maze exit
  SAVE_COST_MAP  any extra argument saves the distance heat-map instead of the path

Flags:
  -config FILE    YAML configuration file
  -o FILE         output image (.jpg, .png, .bmp, .tif)
  -threshold N    luminance above which a pixel is free (default 200)
  -no-dilate      skip thin-wall repair
  -heatmap        save the distance heat-map instead of the path
  -exhaustive     shade every reachable cell in heat-map mode
`)
}
