package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// soundRect is the sound toggle button in the top-right corner.
func soundRect(boardW int) core.Rect {
	return core.NewRect(boardW-90, 10, 80, 30)
}

// pauseRect is the pause icon left of the sound button.
func pauseRect(boardW int) core.Rect {
	return core.NewRect(boardW-120, 10, 25, 30)
}

func hudRects(boardW int) []core.Rect {
	return []core.Rect{soundRect(boardW), pauseRect(boardW)}
}

var keyDirections = map[core.Key]snake.Direction{
	core.KeyUp:    snake.DirUp,
	core.KeyDown:  snake.DirDown,
	core.KeyLeft:  snake.DirLeft,
	core.KeyRight: snake.DirRight,
}

type playingScreen struct{}

func (*playingScreen) state() State { return StatePlaying }

// enter starts a new session unless returning from pause.
func (*playingScreen) enter(m *Machine) error {
	if m.session != nil && !m.session.Over() {
		return nil
	}
	s, err := m.app.newSession()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	m.session = s
	m.app.Logger.Info("session started", "name", m.name, "food", s.Food())
	return nil
}

func (*playingScreen) handle(m *Machine, ev core.Event) State {
	w := m.app.Board.Width

	switch e := ev.(type) {
	case core.MouseDownEvent:
		switch {
		case soundRect(w).Contains(e.Pos):
			m.session.ToggleSound()
		case pauseRect(w).Contains(e.Pos):
			return StatePaused
		}
	case core.KeyDownEvent:
		if d, ok := keyDirections[e.Key]; ok {
			m.session.SetDirection(d)
			break
		}
		switch e.Key {
		case core.KeyPause:
			return StatePaused
		case core.KeyMute:
			m.session.ToggleSound()
		}
	}
	return StatePlaying
}

func (*playingScreen) frame(m *Machine) State {
	s := m.session
	res := s.Step()
	if res.Ate && s.SoundOn() {
		m.app.Sound.Play(audio.EffectEat)
	}
	if !res.Over() {
		return StatePlaying
	}

	m.lastScore = s.Score()
	m.app.Logger.Info("session over",
		"name", m.name,
		"score", s.Score(),
		"collision", res.Collision,
		"board_full", res.BoardFull,
	)
	return StateGameOver
}

func (*playingScreen) render(m *Machine, r Renderer) {
	drawPlayfield(m, r, false)
}

func (*playingScreen) fps(m *Machine) int {
	if m.session == nil {
		return m.menuFPS()
	}
	return m.session.Speed()
}

// drawPlayfield draws the board, the snake and the HUD. When paused the
// HUD shows the play icon instead of the pause icon.
func drawPlayfield(m *Machine, r Renderer, paused bool) {
	app, s := m.app, m.session
	r.Clear(colorBackground)
	if s == nil {
		return
	}

	food := app.Board.CellRect(s.Food())
	if app.Assets.Fruit != nil {
		r.Blit(app.Assets.Fruit, food)
	} else {
		r.FillRect(food, colorFoodFallback)
	}

	color := app.snakeColor(s.ColorIndex())
	for _, seg := range s.Snake().Body() {
		r.FillRect(app.Board.CellRect(seg), color)
	}

	r.Text(fmt.Sprintf("Score: %d", s.Score()), 10, 10, colorText, core.AlignLeft)

	sound := soundRect(app.Board.Width)
	label, fill := "♪ ON", colorSoundOn
	if !s.SoundOn() {
		label, fill = "♪ OFF", colorSoundOff
	}
	r.FillRect(sound, fill)
	c := sound.Center()
	r.Text(label, c.X, c.Y, colorText, core.AlignCenter)

	icon, fallback := app.Assets.Pause, "P"
	if paused {
		icon, fallback = app.Assets.Play, ">"
	}
	pause := pauseRect(app.Board.Width)
	r.FillRect(pause, colorButtonInactive)
	if icon != nil {
		r.Blit(icon, pause)
	} else {
		c := pause.Center()
		r.Text(fallback, c.X, c.Y, colorText, core.AlignCenter)
	}
}
