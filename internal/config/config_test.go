package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded default differs from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := "board:\n  width: 400\nhighscore:\n  backend: text\n  path: /tmp/hs.txt\nserve:\n  idle_timeout: 5m\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 400 || cfg.Board.Height != 400 || cfg.Board.Block != 20 {
		t.Errorf("board = %+v", cfg.Board)
	}
	if cfg.Highscore.Backend != "text" {
		t.Errorf("backend = %q", cfg.Highscore.Backend)
	}
	if cfg.Serve.IdleTimeout != 5*time.Minute {
		t.Errorf("idle timeout = %v", cfg.Serve.IdleTimeout)
	}
	if cfg.Progression.BaseSpeed != 8 {
		t.Errorf("base speed = %d, want default 8", cfg.Progression.BaseSpeed)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("board: [1, 2"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("board:\n  block: 0\n"), 0o644)
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(invalid) error = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero block", func(c *Config) { c.Board.Block = 0 }, false},
		{"board smaller than block", func(c *Config) { c.Board.Width = 10 }, false},
		{"width not whole blocks", func(c *Config) { c.Board.Width = 610 }, false},
		{"height not whole blocks", func(c *Config) { c.Board.Height = 390 }, false},
		{"odd block", func(c *Config) { c.Board.Block = 25; c.Board.Width = 600; c.Board.Height = 400 }, false},
		{"smaller even block", func(c *Config) { c.Board.Block = 10 }, true},
		{"zero speed", func(c *Config) { c.Progression.BaseSpeed = 0 }, false},
		{"negative step", func(c *Config) { c.Progression.SpeedStep = -1 }, false},
		{"zero level size", func(c *Config) { c.Progression.PointsPerLevel = 0 }, false},
		{"empty palette", func(c *Config) { c.Progression.Palette = nil }, false},
		{"unknown color", func(c *Config) { c.Progression.Palette = []string{"green", "ultraviolet"} }, false},
		{"zero menu fps", func(c *Config) { c.MenuFPS = 0 }, false},
		{"unknown backend", func(c *Config) { c.Highscore.Backend = "csv" }, false},
		{"empty path", func(c *Config) { c.Highscore.Path = "" }, false},
		{"sqlite", func(c *Config) { c.Highscore.Backend = "sqlite" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		speed  int
		ok     bool
	}{
		{"", 8, true},
		{DifficultyEasy, 6, true},
		{DifficultyNormal, 8, true},
		{DifficultyHard, 12, true},
		{"insane", 8, false},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		err := ApplyPreset(&cfg, tt.preset)
		if (err == nil) != tt.ok {
			t.Errorf("ApplyPreset(%q) error = %v", tt.preset, err)
		}
		if cfg.Progression.BaseSpeed != tt.speed {
			t.Errorf("ApplyPreset(%q) speed = %d, want %d", tt.preset, cfg.Progression.BaseSpeed, tt.speed)
		}
	}
}
