package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8811, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Diff.Context)
	assert.True(t, cfg.Diff.Collapse)
	assert.Equal(t, "pretty", cfg.Output.Format)
	assert.NoError(t, Validate(cfg))
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diffsight.toml")
	content := `[server]
port = 9000

[diff]
context = 5
collapse = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Diff.Context)
	assert.False(t, cfg.Diff.Collapse)
	// Unset keys keep their defaults.
	assert.Equal(t, "pretty", cfg.Output.Format)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diffsight.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nport = 9000\n"), 0644))

	t.Setenv("DIFFSIGHT_SERVER_PORT", "9100")
	t.Setenv("DIFFSIGHT_OUTPUT_FORMAT", "json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	cfg.Server.Port = 0
	assert.Error(t, Validate(cfg))
	cfg.Server.Port = 8811

	cfg.Diff.Context = -1
	assert.Error(t, Validate(cfg))
	cfg.Diff.Context = 3

	cfg.Output.Format = "xml"
	assert.Error(t, Validate(cfg))
	cfg.Output.Format = "json"
	assert.NoError(t, Validate(cfg))
}

func TestInitConfigRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diffsight.toml")

	require.NoError(t, InitConfig(path))
	assert.Error(t, InitConfig(path))

	// The generated sample must load and validate cleanly.
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.NoError(t, Validate(cfg))
}
