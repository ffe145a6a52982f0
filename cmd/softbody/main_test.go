package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SmallScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "softbody.json")
	cfg := `{
		"logFormat": "json",
		"ticks": 20,
		"reportEvery": 10,
		"scene": {
			"wallThickness": 0,
			"obstacles": [ { "corners": [ {"x": -50, "y": 100}, {"x": -50, "y": 120}, {"x": 80, "y": 120}, {"x": 80, "y": 100} ] } ],
			"grids": [ { "cols": 3, "rows": 3, "step": 10, "x": 0, "y": 75 } ],
			"rings": []
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	var stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", path}, &stderr))

	out := stderr.String()
	assert.Contains(t, out, `"message":"scene ready"`)
	assert.Contains(t, out, `"ticks":20`)
	assert.Contains(t, out, `"steps":160`)
}

func TestRun_Errors(t *testing.T) {
	var stderr bytes.Buffer
	assert.Error(t, run(context.Background(), []string{"-nope"}, &stderr))
	assert.ErrorContains(t, run(context.Background(), []string{"-config", "/nonexistent/softbody.json"}, &stderr), "load config")
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stderr bytes.Buffer
	assert.NoError(t, run(ctx, nil, &stderr))
}
