// Package config provides the user preferences consumed by the loaders and the
// stores that persist them.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
)

// Preferences holds the last-used appearance of spinners and progress bars.
type Preferences struct {
	Spinner     SpinnerPreferences     `yaml:"spinner" toml:"spinner" json:"spinner"`
	ProgressBar ProgressBarPreferences `yaml:"progress_bar" toml:"progress_bar" json:"progress_bar"`
}

// SpinnerPreferences contains spinner settings.
type SpinnerPreferences struct {
	Style string  `yaml:"style" toml:"style" json:"style" env:"SPINNER_STYLE"`
	Color string  `yaml:"color" toml:"color" json:"color" env:"SPINNER_COLOR"`
	Speed float64 `yaml:"speed" toml:"speed" json:"speed" env:"SPINNER_SPEED"` // seconds per frame
}

// ProgressBarPreferences contains progress bar settings.
type ProgressBarPreferences struct {
	Color     string `yaml:"color" toml:"color" json:"color" env:"PROGRESS_COLOR"`
	Width     int    `yaml:"width" toml:"width" json:"width" env:"PROGRESS_WIDTH"`
	FillChar  string `yaml:"fill_char" toml:"fill_char" json:"fill_char" env:"PROGRESS_FILL_CHAR"`
	EmptyChar string `yaml:"empty_char" toml:"empty_char" json:"empty_char" env:"PROGRESS_EMPTY_CHAR"`
}

// Default values for preferences missing from the store.
const (
	DefaultSpinnerStyle  = "dots"
	DefaultSpinnerColor  = "white"
	DefaultSpinnerSpeed  = 0.1
	DefaultProgressColor = "blue"
	DefaultProgressWidth = 40
	DefaultFillChar      = "█"
	DefaultEmptyChar     = "░"
)

// EnvPrefix prefixes every environment variable that overrides a preference,
// e.g. TERMLOAD_SPINNER_STYLE.
const EnvPrefix = "TERMLOAD_"

// Default returns the built-in preferences.
func Default() Preferences {
	var p Preferences
	p.applyDefaults()
	return p
}

// Interval converts Speed into a frame interval.
func (s SpinnerPreferences) Interval() time.Duration {
	return time.Duration(s.Speed * float64(time.Second))
}

// applyDefaults sets default values for missing or unusable fields.
func (p *Preferences) applyDefaults() {
	if p.Spinner.Style == "" {
		p.Spinner.Style = DefaultSpinnerStyle
	}
	if p.Spinner.Color == "" {
		p.Spinner.Color = DefaultSpinnerColor
	}
	if p.Spinner.Speed <= 0 {
		p.Spinner.Speed = DefaultSpinnerSpeed
	}
	if p.ProgressBar.Color == "" {
		p.ProgressBar.Color = DefaultProgressColor
	}
	if p.ProgressBar.Width <= 0 {
		p.ProgressBar.Width = DefaultProgressWidth
	}
	if p.ProgressBar.FillChar == "" {
		p.ProgressBar.FillChar = DefaultFillChar
	}
	if p.ProgressBar.EmptyChar == "" {
		p.ProgressBar.EmptyChar = DefaultEmptyChar
	}
}

// ApplyEnv overrides p with any TERMLOAD_* environment variables that are set.
// On error p is left untouched.
func ApplyEnv(p *Preferences) error {
	overridden := *p
	if err := env.ParseWithOptions(&overridden, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	*p = overridden
	return nil
}

// DefaultPath returns the per-user preference file location,
// $XDG_CONFIG_HOME/termload/preferences.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "termload", "preferences.yaml")
}
