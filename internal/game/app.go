// Package game implements the snake screens (menu, name entry, play, pause
// and game over) as a state machine driven one frame at a time. It has no
// terminal dependencies: input arrives as core events and output goes to a
// Renderer.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Renderer is the drawing surface. Coordinates are board pixels.
type Renderer interface {
	Clear(bg core.Color)
	FillRect(r core.Rect, color core.Color)
	Outline(r core.Rect, color core.Color)
	Blit(sp *core.Sprite, r core.Rect)
	Text(text string, x, y int, fg core.Color, align core.Align)
}

var _ Renderer = (*core.Canvas)(nil)

// Options collects the collaborators of an App.
type Options struct {
	Config config.Config
	Scores *highscore.Board
	Sound  audio.Player // nil plays nothing
	Assets *assets.Set  // nil uses fallbacks everywhere
	Logger *log.Logger  // nil discards
	Seed   int64        // 0 seeds from the clock
}

// App is the context shared by every screen of one player.
type App struct {
	Config      config.Config
	Board       snake.Board
	Progression snake.Progression
	Palette     []core.Color
	Reserved    []core.Rect // HUD regions food must avoid
	Scores      *highscore.Board
	Sound       audio.Player
	Assets      *assets.Set
	Logger      *log.Logger
	Rng         *rand.Rand
}

// NewApp checks the configuration and builds the shared context.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.PaletteColors()
	if err != nil {
		return nil, err
	}
	if opts.Scores == nil {
		return nil, fmt.Errorf("game: no highscore board")
	}

	board := snake.Board{
		Width:  cfg.Board.Width,
		Height: cfg.Board.Height,
		Block:  cfg.Board.Block,
	}
	reserved := hudRects(board.Width)

	placer := snake.Placer{Board: board, Reserved: reserved}
	if err := placer.Validate(); err != nil {
		return nil, fmt.Errorf("game: board %dx%d leaves no room for food: %w", board.Width, board.Height, err)
	}

	app := &App{
		Config: cfg,
		Board:  board,
		Progression: snake.Progression{
			BaseSpeed:      cfg.Progression.BaseSpeed,
			SpeedStep:      cfg.Progression.SpeedStep,
			PointsPerLevel: cfg.Progression.PointsPerLevel,
			PaletteSize:    len(palette),
		},
		Palette:  palette,
		Reserved: reserved,
		Scores:   opts.Scores,
		Sound:    opts.Sound,
		Assets:   opts.Assets,
		Logger:   opts.Logger,
	}
	if app.Sound == nil {
		app.Sound = audio.Silent{}
	}
	if app.Assets == nil {
		app.Assets = &assets.Set{}
	}
	if app.Logger == nil {
		app.Logger = log.New(io.Discard)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	app.Rng = rand.New(rand.NewSource(seed))
	return app, nil
}

// newSession starts a play-through on this app's board.
func (a *App) newSession() (*snake.Session, error) {
	return snake.NewSession(snake.SessionConfig{
		Board:       a.Board,
		Reserved:    a.Reserved,
		Progression: a.Progression,
		MaxAttempts: a.Config.FoodAttempts,
		SoundOn:     true,
	}, a.Rng)
}

// snakeColor returns the palette entry for a palette index.
func (a *App) snakeColor(index int) core.Color {
	if len(a.Palette) == 0 {
		return core.ColorGreen
	}
	return a.Palette[index%len(a.Palette)]
}
