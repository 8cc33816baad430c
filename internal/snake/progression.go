package snake

// Progression is the fixed-threshold difficulty policy: every
// PointsPerLevel points the tick rate rises by SpeedStep and the snake
// takes the next color of a cyclic palette.
type Progression struct {
	BaseSpeed      int // Ticks per second at score 0
	SpeedStep      int
	PointsPerLevel int
	PaletteSize    int
}

// DefaultProgression matches the classic game: 8 ticks/s, +1 every 5 points,
// five snake colors.
func DefaultProgression() Progression {
	return Progression{
		BaseSpeed:      8,
		SpeedStep:      1,
		PointsPerLevel: 5,
		PaletteSize:    5,
	}
}

// Level returns how many thresholds the score has crossed.
func (p Progression) Level(score int) int {
	if p.PointsPerLevel <= 0 || score < 0 {
		return 0
	}
	return score / p.PointsPerLevel
}

// Speed returns the tick rate for the score.
func (p Progression) Speed(score int) int {
	return p.BaseSpeed + p.Level(score)*p.SpeedStep
}

// ColorIndex returns the palette entry for the score.
func (p Progression) ColorIndex(score int) int {
	if p.PaletteSize <= 0 {
		return 0
	}
	return p.Level(score) % p.PaletteSize
}
