package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"containermap/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Store.ContainerProfiles, 10)
	assert.Len(t, cfg.Store.TopContainers, 2)
	assert.Equal(t, "warn", cfg.Logging.Level)

	s, ok := cfg.Sample("existing-barcode")
	require.True(t, ok)
	assert.Equal(t, "12345", s.Fields["barcode_1"])

	_, ok = cfg.Sample("missing")
	assert.False(t, ok)
}

func TestFromYAMLValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "bad log level",
			yaml: "logging:\n  level: loud\n",
			want: "config.logging.level",
		},
		{
			name: "profile missing depth",
			yaml: "store:\n  container_profiles:\n    - {name: a, dimension_units: feet, extent_dimension: width, height: '1', width: '1'}\n",
			want: "store.container_profiles[0].depth is required",
		},
		{
			name: "duplicate profile",
			yaml: "store:\n  container_profiles:\n" +
				"    - {name: a, dimension_units: feet, extent_dimension: width, height: '1', width: '1', depth: '1'}\n" +
				"    - {name: a, dimension_units: feet, extent_dimension: width, height: '1', width: '1', depth: '1'}\n",
			want: "container profile a defined twice",
		},
		{
			name: "top container without indicator",
			yaml: "store:\n  top_containers:\n    - {barcode: '1'}\n",
			want: "store.top_containers[0].indicator is required",
		},
		{
			name: "unknown profile reference",
			yaml: "store:\n  top_containers:\n    - {indicator: '1', container_profile: nope}\n",
			want: "unknown container profile nope",
		},
		{
			name: "duplicate top container id",
			yaml: "store:\n  top_containers:\n    - {id: T1, indicator: '1'}\n    - {id: T1, indicator: '2'}\n",
			want: "top container id T1 used twice",
		},
		{
			name: "sample with unknown field",
			yaml: "samples:\n  - name: s\n    fields: {barcode: '1'}\n",
			want: "sample s has unknown source field barcode",
		},
		{
			name: "unnamed sample",
			yaml: "samples:\n  - fields: {barcode_1: '1'}\n",
			want: "samples[0].name is required",
		},
		{
			name: "misspelled fixture field",
			yaml: "store:\n  top_containers:\n    - {indicator: '1', barcod: '12'}\n",
			want: "field barcod not found",
		},
		{
			name: "malformed",
			yaml: "store: [",
			want: "invalid config yaml",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.FromYAML([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFromYAMLEmptyDocument(t *testing.T) {
	cfg, err := config.FromYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Store.TopContainers)
	assert.Empty(t, cfg.Samples)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	_, err := config.FromFile(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err, "FromFile has no fallback")

	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte(config.GenerateDefault()), 0o644))
	cfg, err := config.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.LoadOptional(dir)
	require.NoError(t, err)
	assert.Len(t, cfg.Store.TopContainers, 2, "missing file yields the default")

	_, err = config.Load(dir)
	assert.Error(t, err)

	data := "store:\n  top_containers:\n    - {id: X, indicator: '9'}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(data), 0o644))

	cfg, err = config.Load(dir)
	require.NoError(t, err)
	require.Len(t, cfg.Store.TopContainers, 1)
	assert.Equal(t, "X", cfg.Store.TopContainers[0].ID)
}

func TestPath(t *testing.T) {
	assert.Equal(t, config.FileName, config.Path(""))
	assert.Equal(t, filepath.Join("ws", config.FileName), config.Path("ws"))
}
