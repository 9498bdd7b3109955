// Package config loads solver settings from YAML.
//
// Every field has a default equal to the constant the maze solver has always
// used, so an empty or missing file behaves exactly like no file at all.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazesolver/grid"
	"github.com/katalvlaran/mazesolver/imageio"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultOutput is the file written when no output is configured.
const DefaultOutput = "output.jpg"

// Config holds the tunable pipeline settings.
type Config struct {
	// Threshold: samples strictly above it are free cells.
	Threshold uint8 `yaml:"threshold"`
	// Dilate runs the wall repairer after binarization.
	Dilate bool `yaml:"dilate"`
	// Output is the rendered image path; its extension picks the format.
	Output string `yaml:"output"`
	// JPEGQuality is used for .jpg/.jpeg outputs, 1..100.
	JPEGQuality int `yaml:"jpeg_quality"`
	// HeatMap renders the distance field instead of the route.
	HeatMap bool `yaml:"heatmap"`
	// ExhaustiveHeatMap lets the search run past the end cell so every
	// reachable cell is shaded.
	ExhaustiveHeatMap bool `yaml:"exhaustive_heatmap"`
}

// Default returns the settings of the classic solver: threshold 200,
// dilation on, output.jpg at quality 100, path mode.
func Default() Config {
	return Config{
		Threshold:   grid.DefaultThreshold,
		Dilate:      true,
		Output:      DefaultOutput,
		JPEGQuality: imageio.DefaultQuality,
	}
}

// Load reads a YAML file over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes over Default and validates the result.
// Keys absent from data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the output path and the JPEG quality.
func (c Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("%w: output must not be empty", ErrInvalidConfig)
	}
	if _, err := imageio.FormatFromPath(c.Output); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("%w: jpeg_quality %d not within 1..100", ErrInvalidConfig, c.JPEGQuality)
	}

	return nil
}
