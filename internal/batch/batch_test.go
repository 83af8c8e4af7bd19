package batch

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solidview/internal/geometry"
	"solidview/internal/output"
)

func TestJobs(t *testing.T) {
	jobs := Jobs([]geometry.Kind{geometry.Cube, geometry.Torus}, 4)
	require.Len(t, jobs, 8)

	assert.Equal(t, geometry.Cube, jobs[0].Kind)
	assert.Equal(t, geometry.Torus, jobs[4].Kind)
	for i, j := range jobs[:4] {
		assert.Equal(t, i, j.Frame)
	}
	assert.InDelta(t, 0, jobs[0].Yaw, 1e-6)
	assert.InDelta(t, 1.5707964, jobs[1].Yaw, 1e-5)

	assert.Len(t, Jobs([]geometry.Kind{geometry.Sphere}, 0), 1)
}

func TestRelPath(t *testing.T) {
	p := RelPath(Job{Kind: geometry.Sphere, Frame: 7}, output.TGA)
	assert.Equal(t, filepath.Join("sphere", "007.tga"), p)
}

func TestRunWritesFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		OutputDir:   dir,
		Width:       24,
		Height:      16,
		Supersample: 1,
		Frames:      3,
		PitchDeg:    20,
		Format:      output.PNG,
		Workers:     2,
		Params:      geometry.DefaultParams(),
	}
	kinds := []geometry.Kind{geometry.Cube, geometry.Sphere, geometry.Triangle}
	results := Run(cfg, Jobs(kinds, cfg.Frames))
	require.Len(t, results, 9)

	for _, r := range results {
		require.True(t, r.Success, r.Error)
		f, err := os.Open(filepath.Join(dir, r.Path))
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 24, img.Bounds().Dx())
		assert.Equal(t, 16, img.Bounds().Dy())
	}

	manifest := filepath.Join(dir, "manifest.json")
	require.NoError(t, WriteManifest(manifest, cfg.PitchDeg, results))

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 9)
	assert.Equal(t, "cube", entries[0].Primitive)
	assert.Equal(t, "cube/000.png", entries[0].Image)
	assert.InDelta(t, 120, entries[1].YawDeg, 1e-3)
	assert.Equal(t, float32(20), entries[1].PitchDeg)
}

func TestRunReportsSaveErrors(t *testing.T) {
	// a regular file where the output directory should be
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	cfg := Config{OutputDir: blocker, Width: 8, Height: 8, Supersample: 1, Workers: 1, Format: output.PNG}
	results := Run(cfg, Jobs([]geometry.Kind{geometry.Cube}, 1))
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)

	manifest := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, WriteManifest(manifest, 0, results))
	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
