package snake

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Score      int
	SnakeLen   int
	TargetLen  int
	HeadX      int
	HeadY      int
	Dir        Direction
	FoodX      int
	FoodY      int
	Speed      int
	ColorIndex int
	SoundOn    bool
	Collision  Collision
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	head := s.snake.Head()
	return Snapshot{
		Tick:       s.tick,
		Score:      s.score,
		SnakeLen:   s.snake.Len(),
		TargetLen:  s.snake.TargetLen(),
		HeadX:      head.X,
		HeadY:      head.Y,
		Dir:        s.snake.Direction(),
		FoodX:      s.food.X,
		FoodY:      s.food.Y,
		Speed:      s.Speed(),
		ColorIndex: s.ColorIndex(),
		SoundOn:    s.soundOn,
		Collision:  s.last.Collision,
	}
}
