// Package config provides configuration loading for planvas.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML files can use "1500ms" / "2s" forms.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds every user-tunable canvas setting.
type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Minimap MinimapConfig `yaml:"minimap"`
	Log     LogConfig     `yaml:"log"`
}

// CanvasConfig tunes scrolling and highlight behavior.
type CanvasConfig struct {
	// HighlightClear is how long a transient highlight stays before it is
	// cleared.
	HighlightClear Duration `yaml:"highlightClear"`
	// ScrollMargin is the comfort margin in cells: an active node already
	// this far inside the viewport does not trigger an auto-scroll.
	ScrollMargin int `yaml:"scrollMargin"`
	// Follow enables auto-scroll to the active node on live updates.
	// Pointer so an absent key in an overlay file leaves the default alone.
	Follow *bool `yaml:"follow"`
}

// FollowEnabled reports whether live auto-scroll is on.
func (c CanvasConfig) FollowEnabled() bool {
	return c.Follow == nil || *c.Follow
}

// MinimapConfig sizes the overview panel.
type MinimapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig controls the debug log file. A TUI cannot write to stderr, so
// diagnostics go to a rotating file instead.
type LogConfig struct {
	// Path of the log file; empty disables file logging.
	Path string `yaml:"path"`
	// MaxSizeMB is the rotation threshold per file.
	MaxSizeMB int `yaml:"maxSizeMB"`
	// MaxBackups is how many rotated files to keep.
	MaxBackups int `yaml:"maxBackups"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			HighlightClear: Duration(1500 * time.Millisecond),
			ScrollMargin:   4,
		},
		Minimap: MinimapConfig{
			Width:  24,
			Height: 10,
		},
		Log: LogConfig{
			Path:       "",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Canvas.HighlightClear <= 0 {
		return fmt.Errorf("canvas.highlightClear must be positive")
	}
	if c.Canvas.ScrollMargin < 0 {
		return fmt.Errorf("canvas.scrollMargin must not be negative")
	}
	if c.Minimap.Width < 4 || c.Minimap.Height < 2 {
		return fmt.Errorf("minimap must be at least 4x2")
	}
	return nil
}

// Merge overlays non-zero fields from other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Canvas.HighlightClear != 0 {
		c.Canvas.HighlightClear = other.Canvas.HighlightClear
	}
	if other.Canvas.ScrollMargin != 0 {
		c.Canvas.ScrollMargin = other.Canvas.ScrollMargin
	}
	if other.Canvas.Follow != nil {
		c.Canvas.Follow = other.Canvas.Follow
	}
	if other.Minimap.Width != 0 {
		c.Minimap.Width = other.Minimap.Width
	}
	if other.Minimap.Height != 0 {
		c.Minimap.Height = other.Minimap.Height
	}
	if other.Log.Path != "" {
		c.Log.Path = other.Log.Path
	}
	if other.Log.MaxSizeMB != 0 {
		c.Log.MaxSizeMB = other.Log.MaxSizeMB
	}
	if other.Log.MaxBackups != 0 {
		c.Log.MaxBackups = other.Log.MaxBackups
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &c, nil
}
