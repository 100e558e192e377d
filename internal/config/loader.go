package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/colorcycle"
	projectConfigDir = ".colorcycle"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user, project and
// environment settings.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	for _, locate := range []func() (string, error){getUserConfigPath, getProjectConfigPath} {
		path, err := locate()
		if err != nil {
			// Config files are optional; an unresolvable location is skipped.
			fmt.Fprintf(os.Stderr, "Warning: Could not determine config path: %v\n", err)
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
		}
		config = mergeConfigs(config, overlay)
	}

	envOverlay, err := loadEnvOverlay()
	if err != nil {
		return Config{}, err
	}
	config = mergeConfigs(config, envOverlay)

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// LoadConfigFromPath loads defaults overlaid with a single file and the
// environment. Unlike LoadConfig, a missing file is an error.
func LoadConfigFromPath(path string) (Config, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	envOverlay, err := loadEnvOverlay()
	if err != nil {
		return Config{}, err
	}
	config := mergeConfigs(mergeConfigs(GetDefaultConfig(), overlay), envOverlay)
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Only fields set in
// overlay take effect; labels are merged per id.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Selection != nil {
		merged.Selection = slices.Clone(overlay.Selection)
	}
	if overlay.Speed != nil {
		merged.Speed = overlay.Speed
	}
	if overlay.Paused != nil {
		merged.Paused = overlay.Paused
	}
	if overlay.Zen != nil {
		merged.Zen = overlay.Zen
	}
	if overlay.DarkMode != nil {
		merged.DarkMode = overlay.DarkMode
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if len(overlay.Labels) > 0 {
		labels := make(map[int]string, len(base.Labels)+len(overlay.Labels))
		maps.Copy(labels, base.Labels)
		maps.Copy(labels, overlay.Labels)
		merged.Labels = labels
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// SearchPaths returns the files LoadConfig layers over the defaults, lowest
// precedence first. Locations that cannot be resolved are left out.
func SearchPaths() []string {
	var paths []string
	for _, locate := range []func() (string, error){getUserConfigPath, getProjectConfigPath} {
		if path, err := locate(); err == nil {
			paths = append(paths, path)
		}
	}
	return paths
}
