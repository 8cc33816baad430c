package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:  600,
			Height: 400,
			Block:  20,
		},
		Progression: ProgressionConfig{
			BaseSpeed:      8,
			SpeedStep:      1,
			PointsPerLevel: 5,
			Palette:        []string{"green", "cyan", "yellow", "magenta", "blue"},
		},
		MenuFPS:      15,
		FoodAttempts: 64,
		Highscore: HighscoreConfig{
			Backend: "json",
			Path:    "~/.snake/highscore.json",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
		},
		Serve: ServeConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
