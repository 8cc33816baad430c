// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full game configuration.
type Config struct {
	Board        BoardConfig       `yaml:"board"`
	Progression  ProgressionConfig `yaml:"progression"`
	MenuFPS      int               `yaml:"menu_fps"`
	FoodAttempts int               `yaml:"food_attempts"`
	Highscore    HighscoreConfig   `yaml:"highscore"`
	Assets       AssetsConfig      `yaml:"assets"`
	Audio        AudioConfig       `yaml:"audio"`
	Serve        ServeConfig       `yaml:"serve"`
}

// BoardConfig defines the playfield in pixels.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Block  int `yaml:"block"`
}

// ProgressionConfig defines the speed and color thresholds.
type ProgressionConfig struct {
	BaseSpeed      int      `yaml:"base_speed"`
	SpeedStep      int      `yaml:"speed_step"`
	PointsPerLevel int      `yaml:"points_per_level"`
	Palette        []string `yaml:"palette"`
}

// HighscoreConfig selects the highscore backend.
type HighscoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// AssetsConfig points at an optional directory overriding built-in assets.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled    bool `yaml:"enabled"`
	SampleRate int  `yaml:"sample_rate"`
}

// ServeConfig holds the SSH server settings.
type ServeConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	b := c.Board
	if b.Block <= 0 {
		return fmt.Errorf("%w: board.block must be positive, got %d", ErrInvalid, b.Block)
	}
	if b.Width < b.Block || b.Height < b.Block {
		return fmt.Errorf("%w: board %dx%d is smaller than one block", ErrInvalid, b.Width, b.Height)
	}
	if b.Width%b.Block != 0 || b.Height%b.Block != 0 {
		return fmt.Errorf("%w: board %dx%d is not a whole number of %d-pixel blocks", ErrInvalid, b.Width, b.Height, b.Block)
	}
	// A block is drawn two terminal columns wide.
	if b.Block%2 != 0 {
		return fmt.Errorf("%w: board.block must be even, got %d", ErrInvalid, b.Block)
	}

	p := c.Progression
	if p.BaseSpeed <= 0 {
		return fmt.Errorf("%w: progression.base_speed must be positive, got %d", ErrInvalid, p.BaseSpeed)
	}
	if p.SpeedStep < 0 {
		return fmt.Errorf("%w: progression.speed_step must not be negative", ErrInvalid)
	}
	if p.PointsPerLevel <= 0 {
		return fmt.Errorf("%w: progression.points_per_level must be positive", ErrInvalid)
	}
	if _, err := c.PaletteColors(); err != nil {
		return err
	}

	if c.MenuFPS <= 0 {
		return fmt.Errorf("%w: menu_fps must be positive", ErrInvalid)
	}
	if c.FoodAttempts < 0 {
		return fmt.Errorf("%w: food_attempts must not be negative", ErrInvalid)
	}

	switch c.Highscore.Backend {
	case "json", "sqlite", "text":
	default:
		return fmt.Errorf("%w: unknown highscore backend %q", ErrInvalid, c.Highscore.Backend)
	}
	if c.Highscore.Path == "" {
		return fmt.Errorf("%w: highscore.path is empty", ErrInvalid)
	}
	return nil
}

// PaletteColors resolves the snake palette names.
func (c Config) PaletteColors() ([]core.Color, error) {
	if len(c.Progression.Palette) == 0 {
		return nil, fmt.Errorf("%w: progression.palette is empty", ErrInvalid)
	}
	colors := make([]core.Color, 0, len(c.Progression.Palette))
	for _, name := range c.Progression.Palette {
		col, err := core.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("%w: progression.palette: %v", ErrInvalid, err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}
