package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solidview/internal/geometry"
	"solidview/internal/output"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"cfg.json", `{"width": 320, "frames": 4, "primitives": ["cube", "torus"],
			"shapes": {"torus": {"major_radius": 1.5, "segments_u": 12}}}`},
		{"cfg.toml", "width = 320\nframes = 4\nprimitives = [\"cube\", \"torus\"]\n\n" +
			"[shapes.torus]\nmajor_radius = 1.5\nsegments_u = 12\n"},
		{"cfg.yaml", "width: 320\nframes: 4\nprimitives: [cube, torus]\n" +
			"shapes:\n  torus:\n    major_radius: 1.5\n    segments_u: 12\n"},
		{"cfg.yml", "width: 320\nframes: 4\nprimitives:\n  - cube\n  - torus\n" +
			"shapes:\n  torus:\n    major_radius: 1.5\n    segments_u: 12\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.name, tt.body))
			require.NoError(t, err)
			assert.Equal(t, 320, cfg.Width)
			assert.Equal(t, 4, cfg.Frames)
			assert.Equal(t, []string{"cube", "torus"}, cfg.Primitives)
			assert.Equal(t, float32(1.5), cfg.Shapes.Torus.MajorRadius)
			assert.Equal(t, 12, cfg.Shapes.Torus.SegmentsU)
			assert.Zero(t, cfg.Height)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "config: read")

	_, err = Load(writeFile(t, "bad.json", "{"))
	assert.ErrorContains(t, err, "config: parse")

	_, err = Load(writeFile(t, "cfg.ini", "width=1"))
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultSize, cfg.Width)
	assert.Equal(t, DefaultSize, cfg.Height)
	assert.Equal(t, DefaultSupersample, cfg.Supersample)
	assert.Equal(t, DefaultFrames, cfg.Frames)
	assert.Equal(t, float32(DefaultPitchDeg), cfg.PitchDeg)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, geometry.DefaultParams(), cfg.Shapes)

	f, err := cfg.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, output.WebP, f)

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Equal(t, geometry.Kinds(), kinds)
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Config{Width: 100, Frames: 3, Format: "png", Primitives: []string{"cube"}}
	cfg.Resolve(Flags{
		Width:      640,
		Format:     "tga",
		Primitives: "sphere, torus,",
	})

	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 3, cfg.Frames)
	assert.Equal(t, "tga", cfg.Format)
	assert.Equal(t, []string{"sphere", "torus"}, cfg.Primitives)
}

func TestKindsRejectsUnknown(t *testing.T) {
	cfg := Config{Primitives: []string{"cube", "teapot"}}
	_, err := cfg.Kinds()
	assert.ErrorContains(t, err, "teapot")
}
