package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SessionConfig holds everything needed to start a play session.
type SessionConfig struct {
	Board       Board
	Reserved    []core.Rect
	Progression Progression
	MaxAttempts int
	SoundOn     bool
}

// StepResult is returned by Session.Step after each tick.
type StepResult struct {
	Collision Collision
	Ate       bool // Food was eaten this tick
	BoardFull bool // No room left for new food; the session is over
}

// Over reports whether the step ended the session.
func (r StepResult) Over() bool {
	return r.Collision != NoCollision || r.BoardFull
}

// Session is the state of one play-through, from spawn to terminal collision.
type Session struct {
	cfg     SessionConfig
	placer  Placer
	rng     *rand.Rand
	snake   *Snake
	food    core.Point
	score   int
	soundOn bool
	tick    uint64
	last    StepResult
}

// NewSession spawns a snake at the board center and places the first food.
func NewSession(cfg SessionConfig, rng *rand.Rand) (*Session, error) {
	s := &Session{
		cfg: cfg,
		placer: Placer{
			Board:       cfg.Board,
			Reserved:    cfg.Reserved,
			MaxAttempts: cfg.MaxAttempts,
		},
		rng:     rng,
		snake:   New(cfg.Board, cfg.Board.Center()),
		soundOn: cfg.SoundOn,
	}

	food, err := s.placer.Place(rng, s.snake.Occupies)
	if err != nil {
		return nil, fmt.Errorf("snake: cannot start session: %w", err)
	}
	s.food = food
	return s, nil
}

// SetDirection forwards a steering request to the snake.
func (s *Session) SetDirection(d Direction) bool {
	if s.last.Over() {
		return false
	}
	return s.snake.SetDirection(d)
}

// Step advances the simulation by one tick. Once the session is over,
// further calls return the terminal result unchanged.
func (s *Session) Step() StepResult {
	if s.last.Over() {
		return s.last
	}
	s.tick++

	result := StepResult{Collision: s.snake.Advance()}
	if result.Collision != NoCollision {
		s.last = result
		return result
	}

	if s.snake.ConsumeFoodIfAtHead(s.food) {
		s.score++
		result.Ate = true

		food, err := s.placer.Place(s.rng, s.snake.Occupies)
		if err != nil {
			result.BoardFull = true
		} else {
			s.food = food
		}
	}

	s.last = result
	return result
}

// ToggleSound flips the session's sound flag.
func (s *Session) ToggleSound() {
	s.soundOn = !s.soundOn
}

// SoundOn reports whether sound effects are enabled.
func (s *Session) SoundOn() bool {
	return s.soundOn
}

// Snake returns the snake.
func (s *Session) Snake() *Snake {
	return s.snake
}

// Food returns the active food cell.
func (s *Session) Food() core.Point {
	return s.food
}

// Score returns the points gathered so far.
func (s *Session) Score() int {
	return s.score
}

// Speed returns the current tick rate.
func (s *Session) Speed() int {
	return s.cfg.Progression.Speed(s.score)
}

// ColorIndex returns the current palette entry for the snake.
func (s *Session) ColorIndex() int {
	return s.cfg.Progression.ColorIndex(s.score)
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.last.Over()
}

// Result returns the most recent step result.
func (s *Session) Result() StepResult {
	return s.last
}
