package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	require.NoError(t, m.Load())

	assert.FileExists(t, filepath.Join(dir, configFileName))
	assert.FileExists(t, filepath.Join(dir, schemaFileName))
	assert.Equal(t, DefaultConfig(), m.Get())
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[launch]
url = "https://example.com"
controls_overlay = true
show_devtools_for_children = true

[window]
width = 1024
height = 768
center_on_open = false

[logging]
level = "DEBUG"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), filePerm))

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "https://example.com", cfg.Launch.URL)
	assert.True(t, cfg.Launch.ControlsOverlay)
	assert.True(t, cfg.Launch.ShowDevtoolsForChildren)
	assert.Equal(t, defaultControlSurfaceURL, cfg.Launch.ControlSurfaceURL)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.False(t, cfg.Window.CenterOnOpen)
	assert.True(t, cfg.Window.Resizeable, "unset keys keep their defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WINSHELL_LOG_LEVEL", "warn")
	t.Setenv("WINSHELL_WINDOW_WIDTH", "1280")

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	content := `
[window]
width = 0
height = -5

[logging]
format = "xml"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), filePerm))

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window.width must be positive")
	assert.Contains(t, err.Error(), "window.height must be positive")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("[window\nwidth = "), filePerm))

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Window.Width = 640
	cfg.Launch.URL = "https://example.org/app"
	require.NoError(t, m.Save(cfg))

	reloaded, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 640, reloaded.Get().Window.Width)
	assert.Equal(t, "https://example.org/app", reloaded.Get().Launch.URL)
}

func TestGetReturnsCopy(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Window.Width = 1
	assert.Equal(t, defaultWindowWidth, m.Get().Window.Width)
}
