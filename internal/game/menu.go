package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const menuScoreLines = 3

type menuScreen struct{}

func (*menuScreen) state() State { return StateMenu }

func (*menuScreen) enter(*Machine) error { return nil }

func (*menuScreen) playButton(m *Machine) button {
	b := m.app.Board
	return button{label: "Play", rect: core.NewRect(b.Width/2-100, b.Height*85/100, 200, 50)}
}

func (s *menuScreen) handle(m *Machine, ev core.Event) State {
	play := s.playButton(m).clicked(ev) || isKey(ev, core.KeyConfirm)
	if text, ok := ev.(core.TextInputEvent); ok && text.Char == ' ' {
		play = true
	}

	switch {
	case play:
		if m.app.Scores.Ranked() {
			return StateNameEntry
		}
		m.name = ""
		return StatePlaying
	case isKey(ev, core.KeyQuit):
		return StateQuit
	}
	return StateMenu
}

func (*menuScreen) frame(*Machine) State { return StateMenu }

func (s *menuScreen) render(m *Machine, r Renderer) {
	w, h := m.app.Board.Width, m.app.Board.Height
	r.Clear(colorBackground)
	drawLogo(m, r)

	r.Text("SNAKE", w/2, h*40/100, colorText, core.AlignCenter)

	y := h * 65 / 100
	if m.app.Scores.Ranked() {
		r.Text("Best scores:", w/2, h*55/100, colorText, core.AlignCenter)
		top := m.app.Scores.Top(menuScoreLines)
		if len(top) == 0 {
			r.Text("Nobody has played yet!", w/2, y, colorText, core.AlignCenter)
		}
		for i, rec := range top {
			r.Text(fmt.Sprintf("%d. %s - %d", i+1, rec.Name, rec.Score), w/2, y+35*i, colorText, core.AlignCenter)
		}
	} else {
		r.Text("Best score:", w/2, h*55/100, colorText, core.AlignCenter)
		if best, ok := m.app.Scores.Best(); ok {
			r.Text(fmt.Sprint(best.Score), w/2, y, colorText, core.AlignCenter)
		} else {
			r.Text("Nobody has played yet!", w/2, y, colorText, core.AlignCenter)
		}
	}

	s.playButton(m).draw(r, m.pointer)
}

func (*menuScreen) fps(m *Machine) int { return m.menuFPS() }

// drawLogo blits the logo near the top of the screen. Nothing is drawn when
// the logo is missing.
func drawLogo(m *Machine, r Renderer) {
	if m.app.Assets.Logo == nil {
		return
	}
	b := m.app.Board
	r.Blit(m.app.Assets.Logo, core.NewRect(b.Width/2-75, b.Height/10, 150, 60))
}
