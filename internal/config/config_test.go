package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 0.016, cfg.DT)
	assert.Equal(t, 0.016, cfg.MaxDT)
	assert.Equal(t, 0.002, cfg.SubstepDT)
	assert.Equal(t, 600, cfg.Ticks)
	assert.Equal(t, 60, cfg.ReportEvery)
	assert.Equal(t, Vec{X: 0, Y: 9.81}, cfg.Gravity)

	assert.Equal(t, 1000.0, cfg.Scene.Width)
	assert.Equal(t, 500.0, cfg.Scene.Height)
	assert.Equal(t, 40.0, cfg.Scene.WallThickness)
	require.Len(t, cfg.Scene.Obstacles, 1)
	assert.Len(t, cfg.Scene.Obstacles[0].Corners, 4)
	require.Len(t, cfg.Scene.Grids, 2)
	assert.Equal(t, Grid{Cols: 10, Rows: 10, Step: 10, X: 300, Y: 50}, cfg.Scene.Grids[0])
	require.Len(t, cfg.Scene.Rings, 2)
	assert.Equal(t, Ring{Points: 20, Radius: 50, X: 420, Y: 400}, cfg.Scene.Rings[1])
	assert.False(t, cfg.Drag.Enabled)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "softbody.json")
	cfg := `{
		"logLevel": "debug",
		"dt": 0.005,
		"ticks": 100,
		"scene": {
			"wallThickness": 0,
			"obstacles": [],
			"grids": [ { "cols": 3, "rows": 3, "step": 10, "x": 0, "y": 75 } ],
			"rings": []
		},
		"drag": { "enabled": true, "startTick": 10, "ticks": 5, "from": { "x": 10, "y": 85 }, "delta": { "x": 1, "y": 0 } }
	}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, 0.005, loaded.DT)
	assert.Equal(t, 0.016, loaded.MaxDT)
	assert.Equal(t, 100, loaded.Ticks)
	assert.Equal(t, 0.0, loaded.Scene.WallThickness)
	assert.Empty(t, loaded.Scene.Obstacles)
	assert.Empty(t, loaded.Scene.Rings)
	require.Len(t, loaded.Scene.Grids, 1)
	assert.Equal(t, Grid{Cols: 3, Rows: 3, Step: 10, X: 0, Y: 75}, loaded.Scene.Grids[0])
	assert.Equal(t, Drag{Enabled: true, StartTick: 10, Ticks: 5, From: Vec{X: 10, Y: 85}, Delta: Vec{X: 1}}, loaded.Drag)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "softbody.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logFormat: json\nreportEvery: 10\n"), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", loaded.LogFormat)
	assert.Equal(t, 10, loaded.ReportEvery)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/softbody.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "softbody.json")
	for _, body := range []string{`{"dt": 0}`, `{"substepDt": -1}`} {
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalid, body)
	}
}

func TestValidate_ObstacleCorners(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Scene.Obstacles = []Obstacle{{Corners: []Vec{{}, {}, {}}}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestClampDT(t *testing.T) {
	cfg := &Config{MaxDT: 0.016}
	assert.Equal(t, 0.0, cfg.ClampDT(-1))
	assert.Equal(t, 0.01, cfg.ClampDT(0.01))
	assert.Equal(t, 0.016, cfg.ClampDT(0.5))
}

func TestSubsteps(t *testing.T) {
	cfg := &Config{SubstepDT: 0.002}

	n, step := cfg.Substeps(0.016)
	assert.Equal(t, 8, n)
	assert.InDelta(t, 0.002, step, 1e-15)

	n, step = cfg.Substeps(0.005)
	assert.Equal(t, 3, n)
	assert.LessOrEqual(t, step, cfg.SubstepDT)

	n, step = cfg.Substeps(0.001)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0.001, step)

	n, step = cfg.Substeps(0)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0.0, step)

	n, step = (&Config{}).Substeps(0.016)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0.016, step)
}
