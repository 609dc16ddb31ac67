// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML files decoded with gopkg.in/yaml.v3; missing files are not errors

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTitle is the status bar text when none is configured.
const DefaultTitle = "Text Editor v0.1"

// LogLevelEnv overrides the log_level setting when set.
const LogLevelEnv = "TEDIT_LOG_LEVEL"

// Settings holds the merged configuration.
type Settings struct {
	Title       string              `yaml:"title,omitempty"`
	LogLevel    string              `yaml:"log_level,omitempty"`
	LogFile     string              `yaml:"log_file,omitempty"`
	Keybindings map[string][]string `yaml:"keybindings,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Title:    DefaultTitle,
		LogLevel: "info",
	}
}

// Load reads and merges global and project-local settings on top of the
// defaults. Project settings override global settings; the environment
// overrides both.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(Defaults(), global), project)
	ResolveEnvVars(merged)
	if lvl := os.Getenv(LogLevelEnv); lvl != "" {
		merged.LogLevel = lvl
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero values of override onto base.
func merge(base, override *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Title != "" {
		result.Title = override.Title
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.LogFile != "" {
		result.LogFile = override.LogFile
	}

	if len(override.Keybindings) > 0 {
		kb := make(map[string][]string, len(base.Keybindings)+len(override.Keybindings))
		for action, keys := range base.Keybindings {
			kb[action] = keys
		}
		for action, keys := range override.Keybindings {
			kb[action] = keys
		}
		result.Keybindings = kb
	}

	return &result
}
