package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"solidview/internal/geometry"
	"solidview/internal/output"
)

// Defaults applied by Resolve.
const (
	DefaultOutputDir   = "renders"
	DefaultSize        = 512
	DefaultSupersample = 2
	DefaultFrames      = 8
	DefaultPitchDeg    = 20
)

// Config holds the render settings and the primitive shapes.
type Config struct {
	OutputDir string `json:"output_dir" toml:"output_dir" yaml:"output_dir"`

	// Render settings
	Width       int     `json:"width" toml:"width" yaml:"width"`
	Height      int     `json:"height" toml:"height" yaml:"height"`
	Supersample int     `json:"supersample" toml:"supersample" yaml:"supersample"`
	Frames      int     `json:"frames" toml:"frames" yaml:"frames"`
	PitchDeg    float32 `json:"pitch_deg" toml:"pitch_deg" yaml:"pitch_deg"`
	Format      string  `json:"format" toml:"format" yaml:"format"`
	Workers     int     `json:"workers" toml:"workers" yaml:"workers"`

	// Primitives to render, by name. Empty means all of them.
	Primitives []string `json:"primitives" toml:"primitives" yaml:"primitives"`

	Shapes geometry.Params `json:"shapes" toml:"shapes" yaml:"shapes"`
}

// Load reads a config file, picking the decoder from the extension
// (.json, .toml, .yaml or .yml).
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir  string
	Width      int
	Height     int
	Frames     int
	Format     string
	Workers    int
	Primitives string // comma-separated names
}

// Resolve applies CLI overrides, then fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Primitives != "" {
		c.Primitives = splitList(flags.Primitives)
	}

	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Width <= 0 {
		c.Width = DefaultSize
	}
	if c.Height <= 0 {
		c.Height = DefaultSize
	}
	if c.Supersample <= 0 {
		c.Supersample = DefaultSupersample
	}
	if c.Frames <= 0 {
		c.Frames = DefaultFrames
	}
	if c.PitchDeg == 0 {
		c.PitchDeg = DefaultPitchDeg
	}
	if c.Format == "" {
		c.Format = string(output.WebP)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if len(c.Primitives) == 0 {
		for _, k := range geometry.Kinds() {
			c.Primitives = append(c.Primitives, k.String())
		}
	}
	c.Shapes = c.Shapes.WithDefaults()
}

// Kinds parses Primitives. Unknown names are an error here, unlike the
// interactive session which ignores them.
func (c *Config) Kinds() ([]geometry.Kind, error) {
	kinds := make([]geometry.Kind, 0, len(c.Primitives))
	for _, name := range c.Primitives {
		k, ok := geometry.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown primitive %q", name)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// OutputFormat parses Format.
func (c *Config) OutputFormat() (output.Format, error) {
	return output.ParseFormat(c.Format)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
