package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"img2geom"
)

// Config holds every knob of a run. Values can come from a YAML file, from
// command line flags, or both; flags win.
type Config struct {
	Input      string   `yaml:"input"`
	Output     string   `yaml:"output"`
	SVGOutput  string   `yaml:"svg_output"`
	Width      int      `yaml:"width"`
	Shapes     int      `yaml:"shapes"`
	ShapeTypes []string `yaml:"shape_types"`
	Alpha      int      `yaml:"alpha"`
	Candidates int      `yaml:"candidates"`
	Mutations  int      `yaml:"mutations"`
	Passes     int      `yaml:"passes"`
	Workers    int      `yaml:"workers"`
	Seed       int64    `yaml:"seed"`
	Background string   `yaml:"background"`
	FrameEvery int      `yaml:"frame_every"`
	FrameDir   string   `yaml:"frame_dir"`
	FontPath   string   `yaml:"font_path"`
}

// DefaultConfig returns the built-in run parameters.
func DefaultConfig() Config {
	return Config{
		Width:      256,
		Shapes:     100,
		ShapeTypes: []string{"any"},
		Alpha:      128,
		Candidates: 100,
		Mutations:  100,
		Passes:     1,
		Seed:       1,
		Background: "average",
		FrameDir:   ".",
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// Validate rejects configs that would fail mid-run.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input image path is required")
	}
	if c.Alpha < 1 || c.Alpha > 255 {
		return fmt.Errorf("alpha must be in [1, 255], got %d", c.Alpha)
	}
	if c.Shapes < 1 {
		return fmt.Errorf("shapes must be at least 1, got %d", c.Shapes)
	}
	if _, err := c.shapeMask(); err != nil {
		return err
	}
	return nil
}

// shapeMask resolves the configured shape type names into a mask.
func (c Config) shapeMask() (img2geom.ShapeType, error) {
	var mask img2geom.ShapeType
	for _, name := range c.ShapeTypes {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "any", "all":
			mask |= img2geom.ShapeAny
		case "rectangle":
			mask |= img2geom.ShapeRectangle
		case "ellipse":
			mask |= img2geom.ShapeEllipse
		case "circle":
			mask |= img2geom.ShapeCircle
		case "triangle":
			mask |= img2geom.ShapeTriangle
		case "line":
			mask |= img2geom.ShapeLine
		case "bezier", "quadratic_bezier":
			mask |= img2geom.ShapeQuadraticBezier
		default:
			return 0, fmt.Errorf("unknown shape type %q", name)
		}
	}
	if mask == 0 {
		mask = img2geom.ShapeAny
	}
	return mask, nil
}

// parseHexColor parses "#RRGGBB" or "RRGGBB" into a fully opaque color.
func parseHexColor(s string) (img2geom.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return img2geom.RGBA{}, fmt.Errorf("expected RRGGBB hex color, got %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return img2geom.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return img2geom.RGBA{R: r, G: g, B: b, A: 255}, nil
}
