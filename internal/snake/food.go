package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNoFreeCell is returned when every cell of the board is reserved or
// blocked, so food cannot be placed.
var ErrNoFreeCell = errors.New("snake: no free cell for food")

// DefaultMaxAttempts bounds random sampling before falling back to a scan.
const DefaultMaxAttempts = 64

// Placer picks food positions that avoid reserved UI regions.
type Placer struct {
	Board       Board
	Reserved    []core.Rect // Screen-space rectangles owned by UI widgets
	MaxAttempts int
}

// Validate reports ErrNoFreeCell when the reserved regions leave no cell.
func (p Placer) Validate() error {
	if _, ok := p.scan(nil); !ok {
		return ErrNoFreeCell
	}
	return nil
}

// Place samples uniformly random grid-aligned cells until one is free.
// After MaxAttempts misses it returns the first free cell in raster order.
// blocked may be nil.
func (p Placer) Place(rng *rand.Rand, blocked func(core.Point) bool) (core.Point, error) {
	cols := p.Board.Width / p.Board.Block
	rows := p.Board.Height / p.Board.Block
	if cols <= 0 || rows <= 0 {
		return core.Point{}, ErrNoFreeCell
	}

	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for i := 0; i < attempts; i++ {
		cell := core.Point{
			X: rng.Intn(cols) * p.Board.Block,
			Y: rng.Intn(rows) * p.Board.Block,
		}
		if p.free(cell, blocked) {
			return cell, nil
		}
	}

	cell, ok := p.scan(blocked)
	if !ok {
		return core.Point{}, ErrNoFreeCell
	}
	return cell, nil
}

// scan returns the first free cell in raster order.
func (p Placer) scan(blocked func(core.Point) bool) (core.Point, bool) {
	for y := 0; y+p.Board.Block <= p.Board.Height; y += p.Board.Block {
		for x := 0; x+p.Board.Block <= p.Board.Width; x += p.Board.Block {
			cell := core.Point{X: x, Y: y}
			if p.free(cell, blocked) {
				return cell, true
			}
		}
	}
	return core.Point{}, false
}

func (p Placer) free(cell core.Point, blocked func(core.Point) bool) bool {
	if p.Board.CellRect(cell).IntersectsAny(p.Reserved) {
		return false
	}
	return blocked == nil || !blocked(cell)
}
