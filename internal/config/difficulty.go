package config

import "fmt"

// DifficultyPreset represents a named starting speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetSpeeds maps presets to progression.base_speed.
var presetSpeeds = map[DifficultyPreset]int{
	DifficultyEasy:   6,
	DifficultyNormal: 8,
	DifficultyHard:   12,
}

// ApplyPreset overrides the configured base speed. The empty preset keeps
// the configured value.
func ApplyPreset(cfg *Config, p DifficultyPreset) error {
	if p == "" {
		return nil
	}
	speed, ok := presetSpeeds[p]
	if !ok {
		return fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, p)
	}
	cfg.Progression.BaseSpeed = speed
	return nil
}
