// Package snake implements the pure Snake game rules: the body model,
// food placement, difficulty progression and a single play session.
package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Collision is the outcome of advancing the snake one step.
type Collision int

const (
	NoCollision Collision = iota
	WallCollision
	SelfCollision
)

func (c Collision) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "unknown"
	}
}

// Board describes the playfield in pixels.
type Board struct {
	Width  int
	Height int
	Block  int
}

// Contains reports whether p lies on the board.
func (b Board) Contains(p core.Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Center returns the block-aligned cell nearest to the middle of the board.
func (b Board) Center() core.Point {
	return core.Point{
		X: core.Snap(b.Width/2, b.Width, b.Block),
		Y: core.Snap(b.Height/2, b.Height, b.Block),
	}
}

// CellRect returns the pixel rectangle covered by the block at p.
func (b Board) CellRect(p core.Point) core.Rect {
	return core.NewRect(p.X, p.Y, b.Block, b.Block)
}

// Snake is the player-controlled chain of segments.
type Snake struct {
	board     Board
	body      []core.Point // Head is the last element
	target    int          // Length the body grows to
	heading   Direction    // Direction of the last step taken
	direction Direction    // Direction of the next step
}

// New creates a one-segment stationary snake at start.
func New(board Board, start core.Point) *Snake {
	return &Snake{
		board:  board,
		body:   []core.Point{start},
		target: 1,
	}
}

// SetDirection steers the snake for its next step. Requests on the axis the
// snake last moved along are rejected and leave the snake unchanged.
func (s *Snake) SetDirection(d Direction) bool {
	if !CanTurn(s.heading, d) {
		return false
	}
	s.direction = d
	return true
}

// Advance moves the head one block in the pending direction, trims the tail
// to the target length and reports any collision. A stationary snake does
// not move.
func (s *Snake) Advance() Collision {
	if s.direction == DirNone {
		return NoCollision
	}

	dx, dy := s.direction.Vector()
	head := s.Head().Add(dx*s.board.Block, dy*s.board.Block)
	s.heading = s.direction

	if !s.board.Contains(head) {
		return WallCollision
	}

	s.body = append(s.body, head)
	if len(s.body) > s.target {
		s.body = s.body[len(s.body)-s.target:]
	}

	for _, seg := range s.body[:len(s.body)-1] {
		if seg == head {
			return SelfCollision
		}
	}
	return NoCollision
}

// ConsumeFoodIfAtHead grows the snake when its head sits on food.
func (s *Snake) ConsumeFoodIfAtHead(food core.Point) bool {
	if s.Head() != food {
		return false
	}
	s.target++
	return true
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.body[len(s.body)-1]
}

// Body returns the segments, tail first. The slice must not be modified.
func (s *Snake) Body() []core.Point {
	return s.body
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Len returns the current number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// TargetLen returns the length the snake is growing to.
func (s *Snake) TargetLen() int {
	return s.target
}

// Direction returns the pending direction.
func (s *Snake) Direction() Direction {
	return s.direction
}
