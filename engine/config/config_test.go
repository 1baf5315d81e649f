package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lantern/engine/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lantern.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "Lantern", cfg.Name)
	assert.Equal(t, uint32(1280), cfg.StartWidth)
	assert.Equal(t, uint32(720), cfg.StartHeight)
	assert.Equal(t, "assets", cfg.AssetDir)
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := writeConfig(t, `
name = "Spooky"
start_width = 1920
start_height = 1080
asset_dir = "content"
log_level = "warn"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Spooky", cfg.Name)
	assert.Equal(t, uint32(1920), cfg.StartWidth)
	assert.Equal(t, uint32(1080), cfg.StartHeight)
	assert.Equal(t, "content", cfg.AssetDir)
	assert.Equal(t, core.WarnLevel, cfg.Level())
}

func TestLoadPartialFileKeepsRemainingDefaults(t *testing.T) {
	path := writeConfig(t, `name = "Spooky"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Spooky", cfg.Name)
	assert.Equal(t, uint32(1280), cfg.StartWidth)
	assert.Equal(t, "assets", cfg.AssetDir)
}

func TestLoadMalformedFileIsAnError(t *testing.T) {
	path := writeConfig(t, `name = {{{`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadClampsWindowSize(t *testing.T) {
	path := writeConfig(t, `
start_width = 100
start_height = 100000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(320), cfg.StartWidth)
	assert.Equal(t, uint32(4096), cfg.StartHeight)
}

func TestLevelFallsBackToDebug(t *testing.T) {
	cfg := &Application{LogLevel: "verbose"}
	assert.Equal(t, core.DebugLevel, cfg.Level())

	cfg.LogLevel = "info"
	assert.Equal(t, core.InfoLevel, cfg.Level())

	cfg.LogLevel = "error"
	assert.Equal(t, core.ErrorLevel, cfg.Level())
}
