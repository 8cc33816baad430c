package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/highscore"
)

type gameOverScreen struct {
	best    highscore.Record
	hasBest bool
}

func (*gameOverScreen) state() State { return StateGameOver }

// enter saves the finished score once, then reads back the best record.
func (s *gameOverScreen) enter(m *Machine) error {
	if m.lastScore > 0 {
		m.app.Scores.Submit(highscore.Record{Name: m.name, Score: m.lastScore})
	}
	s.best, s.hasBest = m.app.Scores.Best()
	return nil
}

func (*gameOverScreen) buttons(m *Machine) (retry, menu button) {
	b := m.app.Board
	x, y := b.Width/2-125, b.Height*70/100
	retry = button{label: "Try again", rect: core.NewRect(x, y, 250, 50)}
	menu = button{label: "Menu", rect: core.NewRect(x, y+60, 250, 50)}
	return retry, menu
}

func (s *gameOverScreen) handle(m *Machine, ev core.Event) State {
	retry, menu := s.buttons(m)
	switch {
	case retry.clicked(ev) || isKey(ev, core.KeyRetry, core.KeyConfirm):
		return StatePlaying
	case menu.clicked(ev) || isKey(ev, core.KeyBack):
		return StateMenu
	}
	return StateGameOver
}

func (*gameOverScreen) frame(*Machine) State { return StateGameOver }

func (s *gameOverScreen) render(m *Machine, r Renderer) {
	w, h := m.app.Board.Width, m.app.Board.Height
	r.Clear(colorBackground)
	r.Text("GAME OVER", w/2, h/4, colorFoodFallback, core.AlignCenter)

	var yours, best string
	if m.app.Scores.Ranked() {
		yours = fmt.Sprintf("Your score (%s): %d", m.name, m.lastScore)
		name, score := "---", 0
		if s.hasBest {
			name, score = s.best.Name, s.best.Score
		}
		best = fmt.Sprintf("Best score: %s - %d", name, score)
	} else {
		yours = fmt.Sprintf("Your score: %d", m.lastScore)
		best = fmt.Sprintf("Best score: %d", s.best.Score)
	}
	r.Text(yours, w/2, h/2-20, colorText, core.AlignCenter)
	r.Text(best, w/2, h/2+20, colorText, core.AlignCenter)

	retry, menu := s.buttons(m)
	retry.draw(r, m.pointer)
	menu.draw(r, m.pointer)
}

func (*gameOverScreen) fps(m *Machine) int { return m.menuFPS() }
