package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/palettectl"
	projectConfigDir = ".palettectl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the palettectl configuration by layering default, user and
// project settings, then the file at explicitPath if it is not empty.
// Unlike the user and project files, an explicit file must exist.
func LoadConfig(explicitPath string) (PalettectlConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if fileExists(userConfigPath) {
		if err := loadConfigFromFile(userConfigPath, &config); err != nil {
			return PalettectlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if fileExists(projectConfigPath) {
		if err := loadConfigFromFile(projectConfigPath, &config); err != nil {
			return PalettectlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	// 4. Explicit --config file
	if explicitPath != "" {
		if err := loadConfigFromFile(explicitPath, &config); err != nil {
			return PalettectlConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return PalettectlConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// loadConfigFromFile decodes a YAML file on top of config. Keys absent from
// the file keep their current values, which is what makes the layers merge.
func loadConfigFromFile(filePath string, config *PalettectlConfig) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
