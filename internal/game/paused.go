package game

import "github.com/vovakirdan/tui-snake/internal/core"

// pausedScreen freezes the session until P is pressed again.
type pausedScreen struct{}

func (*pausedScreen) state() State { return StatePaused }

func (*pausedScreen) enter(*Machine) error { return nil }

func (*pausedScreen) handle(_ *Machine, ev core.Event) State {
	if isKey(ev, core.KeyPause) {
		return StatePlaying
	}
	return StatePaused
}

func (*pausedScreen) frame(*Machine) State { return StatePaused }

func (*pausedScreen) render(m *Machine, r Renderer) {
	drawPlayfield(m, r, true)

	w, h := m.app.Board.Width, m.app.Board.Height
	panel := centeredRect(w/2, h/2-15, 320, 120)
	r.FillRect(panel, colorBackground)
	r.Outline(panel, colorText)
	r.Text("PAUSED", w/2, h/2-50, colorText, core.AlignCenter)
	r.Text("Press P to continue", w/2, h/2+20, colorText, core.AlignCenter)
}

func (*pausedScreen) fps(m *Machine) int { return m.menuFPS() }
