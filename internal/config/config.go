// Package config loads the demo's settings from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Backends the demo can render with.
const (
	BackendSDL      = "sdl"
	BackendTerminal = "term"
)

// Scroll holds the list's kinematic settings.
type Scroll struct {
	Speed float64 `toml:"speed" yaml:"speed"` // px/ms
	Accel float64 `toml:"accel" yaml:"accel"` // px/ms²
}

// Config is the demo configuration. Command line flags override it.
type Config struct {
	Backend        string `toml:"backend" yaml:"backend"`
	Fullscreen     bool   `toml:"fullscreen" yaml:"fullscreen"`
	ThemePath      string `toml:"theme" yaml:"theme"`
	Preset         string `toml:"preset" yaml:"preset"` // built-in theme, "cannoli"
	Device         string `toml:"device" yaml:"device"` // evdev input device
	Language       string `toml:"language" yaml:"language"`
	LogLevel       string `toml:"log_level" yaml:"log_level"`
	LogPath        string `toml:"log_path" yaml:"log_path"`
	ReleaseDelayMs int    `toml:"release_delay_ms" yaml:"release_delay_ms"`
	Scroll         Scroll `toml:"scroll" yaml:"scroll"`
}

// Default returns the configuration used without a file.
func Default() Config {
	return Config{
		Backend:        BackendSDL,
		LogLevel:       "error",
		ReleaseDelayMs: int(constants.DefaultKeyReleaseDelay / time.Millisecond),
		Scroll: Scroll{
			Speed: constants.DefaultScrollSpeed,
			Accel: constants.DefaultScrollAccel,
		},
	}
}

// Load reads path on top of the defaults, picking the syntax from the file
// extension. An empty path returns the defaults. Environment variables fill
// the theme and language when the file leaves them unset.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := decode(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if cfg.ThemePath == "" {
		cfg.ThemePath = os.Getenv(constants.ThemePathEnvVar)
	}
	if cfg.Language == "" {
		cfg.Language = os.Getenv(constants.LanguageEnvVar)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unsupported format, want .toml, .yaml or .yml", path)
	}
	return nil
}

// Validate reports settings the demo cannot run with.
func (c Config) Validate() error {
	var errs []error

	switch c.Backend {
	case BackendSDL, BackendTerminal:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}

	switch c.Preset {
	case "", "cannoli":
	default:
		errs = append(errs, fmt.Errorf("unknown preset %q", c.Preset))
	}

	if c.Scroll.Speed <= 0 {
		errs = append(errs, fmt.Errorf("scroll speed must be positive, got %v", c.Scroll.Speed))
	}
	if c.Scroll.Accel <= 0 {
		errs = append(errs, fmt.Errorf("scroll accel must be positive, got %v", c.Scroll.Accel))
	}
	if c.ReleaseDelayMs < 0 {
		errs = append(errs, fmt.Errorf("release delay must not be negative, got %d", c.ReleaseDelayMs))
	}

	return errors.Join(errs...)
}

// ReleaseDelay returns the key release delay as a duration.
func (c Config) ReleaseDelay() time.Duration {
	return time.Duration(c.ReleaseDelayMs) * time.Millisecond
}
