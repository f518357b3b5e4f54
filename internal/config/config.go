// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when config values are absent or zero.
const (
	DefaultWidth             = 600
	DefaultHeight            = 600
	DefaultTelemetryInterval = 200 * time.Millisecond
	DefaultFrameInterval     = 16 * time.Millisecond
)

// Window is the viewport size in pixels. Particle geometry and the
// rendered scene both derive from it.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Particles tunes the effects engine.
type Particles struct {
	Enabled bool  `yaml:"enabled"`
	Seed    int64 `yaml:"seed"` // 0 selects a time-based seed
}

// Config is the root visualizer configuration.
type Config struct {
	Window            Window    `yaml:"window"`
	TelemetryInterval string    `yaml:"telemetry_interval"`
	FrameInterval     string    `yaml:"frame_interval"`
	Particles         Particles `yaml:"particles"`
}

// Default returns the built-in configuration used when no config file
// is given.
func Default() *Config {
	return &Config{
		Window: Window{Width: DefaultWidth, Height: DefaultHeight},
	}
}

// Load loads YAML config and validates it against a CUE schema.
func Load(configPath, cueSchemaPath string) (*Config, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = DefaultWidth
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = DefaultHeight
	}
	return cfg, nil
}

// TelemetryTick returns the telemetry polling period.
func (c *Config) TelemetryTick() (time.Duration, error) {
	return tick(c.TelemetryInterval, DefaultTelemetryInterval)
}

// FrameTick returns the frame simulation period.
func (c *Config) FrameTick() (time.Duration, error) {
	return tick(c.FrameInterval, DefaultFrameInterval)
}

func tick(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid tick interval %q: %w", raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("tick interval %q must be positive", raw)
	}
	return d, nil
}
