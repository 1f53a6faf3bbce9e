package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tween-tui/tween/pkg/css"
)

// Settings represents the application configuration
type Settings struct {
	Defaults DefaultsSettings `yaml:"defaults"`
	UI       UISettings       `yaml:"ui"`
	Log      LogSettings      `yaml:"log"`
}

// DefaultsSettings configures the fallback for each transition sub-property,
// applied when a partial edit leaves a field unresolved. Empty values keep
// the CSS initial values.
type DefaultsSettings struct {
	Property string `yaml:"property"`
	Duration string `yaml:"duration"`
	Delay    string `yaml:"delay"`
	Timing   string `yaml:"timing"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowPreview bool   `yaml:"show_preview"`
	Stylesheet  string `yaml:"stylesheet"`
}

// LogSettings controls debug logging
type LogSettings struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File  string `yaml:"file"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Defaults: DefaultsSettings{
			Property: "all",
			Duration: "0s",
			Delay:    "0s",
			Timing:   "ease",
		},
		UI: UISettings{
			ShowPreview: true,
			Stylesheet:  "styles.css",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks scalar constraints via struct tags and verifies that the
// configured defaults parse as transition tokens.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if _, err := s.TransitionDefaults(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// TransitionDefaults resolves the configured default strings into typed
// values.
func (s *Settings) TransitionDefaults() (css.Defaults, error) {
	return css.DefaultsFromStrings(
		s.Defaults.Property,
		s.Defaults.Duration,
		s.Defaults.Delay,
		s.Defaults.Timing,
	)
}
