package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("VLIST_THEME", "")
	t.Setenv("VLIST_LANG", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v; want defaults %+v", cfg, Default())
	}
	if got := cfg.ReleaseDelay(); got != 40*time.Millisecond {
		t.Errorf("ReleaseDelay() = %v; want 40ms", got)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "vlist.toml", `
backend = "term"
fullscreen = true
theme = "/etc/vlist/night.toml"
release_delay_ms = 80

[scroll]
speed = 0.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend != BackendTerminal || !cfg.Fullscreen || cfg.ThemePath != "/etc/vlist/night.toml" {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.Scroll.Speed != 0.5 {
		t.Errorf("Scroll.Speed = %v; want 0.5", cfg.Scroll.Speed)
	}
	if cfg.Scroll.Accel != Default().Scroll.Accel {
		t.Errorf("Scroll.Accel = %v; want the default", cfg.Scroll.Accel)
	}
	if cfg.ReleaseDelay() != 80*time.Millisecond {
		t.Errorf("ReleaseDelay() = %v; want 80ms", cfg.ReleaseDelay())
	}
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"vlist.yaml", "vlist.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, name, `
backend: sdl
preset: cannoli
device: /dev/input/event1
language: pt-BR
scroll:
  accel: 0.0002
`)

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Preset != "cannoli" || cfg.Device != "/dev/input/event1" || cfg.Language != "pt-BR" {
				t.Errorf("Load() = %+v", cfg)
			}
			if cfg.Scroll.Accel != 0.0002 || cfg.Scroll.Speed != Default().Scroll.Speed {
				t.Errorf("Scroll = %+v", cfg.Scroll)
			}
		})
	}
}

func TestLoad_EnvFallback(t *testing.T) {
	t.Setenv("VLIST_THEME", "/tmp/theme.toml")
	t.Setenv("VLIST_LANG", "en")

	cfg, err := Load(writeConfig(t, "vlist.toml", `backend = "term"`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ThemePath != "/tmp/theme.toml" || cfg.Language != "en" {
		t.Errorf("Load() = %+v; want theme and language from the environment", cfg)
	}

	cfg, err = Load(writeConfig(t, "vlist.toml", `theme = "/srv/mine.toml"`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ThemePath != "/srv/mine.toml" {
		t.Errorf("ThemePath = %q; the file should win over the environment", cfg.ThemePath)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"unknown backend", "c.toml", `backend = "wayland"`, "unknown backend"},
		{"unknown preset", "c.yaml", `preset: nextui`, "unknown preset"},
		{"zero speed", "c.toml", "[scroll]\nspeed = 0", "scroll speed"},
		{"negative delay", "c.yaml", `release_delay_ms: -1`, "release delay"},
		{"bad toml", "c.toml", `backend = `, "parsing config"},
		{"bad yaml", "c.yaml", "backend: [sdl", "parsing config"},
		{"unknown extension", "c.json", `{}`, "unsupported format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.body))
			if err == nil {
				t.Fatal("Load() succeeded; want an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q; want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}
