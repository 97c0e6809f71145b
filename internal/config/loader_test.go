package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	err := os.WriteFile(tempFilePath, []byte(content), 0644)
	require.NoError(t, err)
	return tempFilePath
}

// mockConfigPaths points the user and project lookups into dir and restores
// them when the test ends.
func mockConfigPaths(t *testing.T, dir string) {
	t.Helper()
	originalHome := osUserHomeDir
	originalGetwd := osGetwd
	t.Cleanup(func() {
		osUserHomeDir = originalHome
		osGetwd = originalGetwd
	})

	osUserHomeDir = func() (string, error) { return filepath.Join(dir, "home"), nil }
	osGetwd = func() (string, error) { return filepath.Join(dir, "project"), nil }
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockConfigPaths(t, t.TempDir())

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), configFileName, `
canvas:
  width: 60
palette:
  maintainBrightness: true
`)

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 60, loadedConfig.Canvas.Width)
	assert.True(t, loadedConfig.Palette.MaintainBrightness)
	// Untouched keys keep their defaults
	assert.Equal(t, DefaultCanvasHeight, loadedConfig.Canvas.Height)
	assert.True(t, loadedConfig.Canvas.ShowLabels)
	assert.Equal(t, OutputFormatText, loadedConfig.Output.Format)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), configFileName, `
canvas:
  width: 60
  height: 8
output:
  format: json
`)
	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), configFileName, `
canvas:
  width: 120
  showLabels: false
`)

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 120, loadedConfig.Canvas.Width)
	assert.Equal(t, 8, loadedConfig.Canvas.Height)
	assert.False(t, loadedConfig.Canvas.ShowLabels)
	assert.Equal(t, OutputFormatJSON, loadedConfig.Output.Format)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), configFileName, `
output:
  format: json
`)
	explicit := createTempConfigFile(t, filepath.Join(tempDir, "elsewhere"), "palette.yaml", `
output:
  format: yaml
  copyToClipboard: true
palette:
  acceptShortHex: true
`)

	loadedConfig, err := LoadConfig(explicit)
	require.NoError(t, err)
	assert.Equal(t, OutputFormatYAML, loadedConfig.Output.Format)
	assert.True(t, loadedConfig.Output.CopyToClipboard)
	assert.True(t, loadedConfig.Palette.AcceptShortHex)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	_, err := LoadConfig(filepath.Join(tempDir, "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	path := createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), configFileName, "canvas: [unterminated")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), configFileName, `
canvas:
  contrastThreshold: 1.5
`)

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contrastThreshold")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PalettectlConfig)
		wantErr string
	}{
		{"defaults", func(*PalettectlConfig) {}, ""},
		{"zero width", func(c *PalettectlConfig) { c.Canvas.Width = 0 }, "canvas.width"},
		{"negative height", func(c *PalettectlConfig) { c.Canvas.Height = -1 }, "canvas.height"},
		{"negative threshold", func(c *PalettectlConfig) { c.Canvas.ContrastThreshold = -0.1 }, "contrastThreshold"},
		{"threshold bounds are inclusive", func(c *PalettectlConfig) { c.Canvas.ContrastThreshold = 1 }, ""},
		{"unknown format", func(c *PalettectlConfig) { c.Output.Format = "xml" }, "output.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetUserConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "home", userConfigDir), dir)
}
