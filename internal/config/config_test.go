package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Convert.IncludeMaps)
	assert.Equal(t, "|", cfg.Convert.ListDelimiter)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillconv.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[logging]
level = "debug"

[convert]
include_maps = true
list_delimiter = ";"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "unset keys keep defaults")
	assert.True(t, cfg.Convert.IncludeMaps)
	assert.Equal(t, ";", cfg.Convert.ListDelimiter)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
