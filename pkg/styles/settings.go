package styles

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tween-tui/tween/pkg/models"
)

const (
	// TweenDir is the project-local configuration directory.
	TweenDir     = ".tween"
	SettingsFile = "settings.yaml"
	DebugLogFile = "debug.log"
)

// InitProjectStructure creates the .tween directory with default settings.
// An existing settings file is left alone.
func InitProjectStructure() error {
	if err := os.MkdirAll(TweenDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", TweenDir, err)
	}

	path := filepath.Join(TweenDir, SettingsFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return WriteSettings(models.DefaultSettings())
}

// ReadSettings loads settings from .tween/settings.yaml, falling back to
// defaults when the file does not exist.
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(TweenDir, SettingsFile)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// WriteSettings saves settings to .tween/settings.yaml.
func WriteSettings(settings *models.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	path := filepath.Join(TweenDir, SettingsFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}
