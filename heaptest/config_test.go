// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaptest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cloudeng.io/meldheap/heaptest"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `iterations: 500
seed: 42
max_key: 10
weights:
  add_heap: 2
  meld: 0
`

const tomlConfig = `iterations = 500
seed = 42
max_key = 10

[weights]
add_heap = 2
meld = 0
`

func expectedConfig() heaptest.Config {
	cfg := heaptest.DefaultConfig()
	cfg.Iterations = 500
	cfg.Seed = 42
	cfg.MaxKey = 10
	cfg.Weights.AddHeap, cfg.Weights.Meld = 2, 0
	return cfg
}

func TestParseConfig(t *testing.T) {
	cfg, err := heaptest.ParseConfig([]byte(yamlConfig), ".yaml")
	require.NoError(t, err)
	// Unspecified fields, including those of nested tables, retain
	// their default values.
	require.Equal(t, expectedConfig(), cfg)

	cfg, err = heaptest.ParseConfig([]byte(tomlConfig), ".toml")
	require.NoError(t, err)
	require.Equal(t, expectedConfig(), cfg)

	cfg, err = heaptest.ParseConfig(nil, ".yaml")
	require.NoError(t, err)
	require.Equal(t, heaptest.DefaultConfig(), cfg)
}

func TestParseConfigErrors(t *testing.T) {
	for i, tc := range []struct {
		data, ext, contains string
	}{
		{"iterations: 10\nbogus: 1\n", ".yaml", "bogus"},
		{"iterations = 10\nbogus = 1\n", ".toml", "bogus"},
		{"[weights]\nmeld = 1\nsplit = 2\n", ".toml", "split"},
		{"iterations: [\n", ".yml", "invalid yaml config"},
		{"iterations: 0\n", ".yaml", "iterations must be at least 1"},
		{"max_key = -1\n", ".toml", "max_key must be at least 1"},
		{"weights:\n  add_heap: 0\n  insert: 0\n  min: 0\n  extract_min: 0\n  meld: 0\n", ".yaml", "at least one operation weight must be positive"},
		{"weights:\n  insert: -1\n  add_heap: 3\n", ".yaml", "weight for insert must not be negative"},
	} {
		_, err := heaptest.ParseConfig([]byte(tc.data), tc.ext)
		require.Error(t, err, "%v: %v", i, tc.data)
		require.ErrorContains(t, err, tc.contains, "%v: %v", i, tc.data)
	}
}

func TestParseConfigUnknownTOMLField(t *testing.T) {
	_, err := heaptest.ParseConfig([]byte("iterations = 10\nbogus = 1\n"), ".toml")
	require.ErrorContains(t, err, "invalid toml config")
	require.ErrorContains(t, err, "bogus = 1")
	require.ErrorContains(t, err, "missing field")
	var sme *toml.StrictMissingError
	require.ErrorAs(t, err, &sme)
}

func TestConfigValidate(t *testing.T) {
	cfg := heaptest.DefaultConfig()
	require.NoError(t, cfg.Validate())
	cfg.Iterations, cfg.TraceLen, cfg.ProgressEvery = 0, -1, -1
	err := cfg.Validate()
	require.ErrorContains(t, err, "iterations")
	require.ErrorContains(t, err, "trace_len")
	require.ErrorContains(t, err, "progress_every")
}

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for name, data := range map[string]string{
		"config.yaml": yamlConfig,
		"config.toml": tomlConfig,
	} {
		filename := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(filename, []byte(data), 0o600))
		cfg, err := heaptest.LoadConfig(ctx, filename)
		require.NoError(t, err, name)
		require.Equal(t, 500, cfg.Iterations)
		require.Equal(t, uint64(42), cfg.Seed)
	}
	_, err := heaptest.LoadConfig(ctx, filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	filename := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("iterations: 0\n"), 0o600))
	_, err = heaptest.LoadConfig(ctx, filename)
	require.ErrorContains(t, err, filename)
}
