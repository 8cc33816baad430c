package game

import (
	"unicode"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MaxNameLen is the longest accepted player name.
const MaxNameLen = 8

type nameEntryScreen struct {
	text   []rune
	active bool
}

func (*nameEntryScreen) state() State { return StateNameEntry }

func (s *nameEntryScreen) enter(*Machine) error {
	s.text = s.text[:0]
	s.active = true
	return nil
}

func (*nameEntryScreen) inputBox(m *Machine) core.Rect {
	b := m.app.Board
	return centeredRect(b.Width/2, b.Height/2, 300, 50)
}

func (s *nameEntryScreen) valid() bool {
	return len(s.text) > 0 && len(s.text) <= MaxNameLen
}

func (s *nameEntryScreen) handle(m *Machine, ev core.Event) State {
	if down, ok := ev.(core.MouseDownEvent); ok {
		s.active = s.inputBox(m).Contains(down.Pos)
		return StateNameEntry
	}
	if !s.active {
		return StateNameEntry
	}

	switch e := ev.(type) {
	case core.KeyDownEvent:
		switch e.Key {
		case core.KeyConfirm:
			if s.valid() {
				m.name = string(s.text)
				return StatePlaying
			}
		case core.KeyBackspace:
			if len(s.text) > 0 {
				s.text = s.text[:len(s.text)-1]
			}
		}
	case core.TextInputEvent:
		if isNameChar(e.Char) && len(s.text) < MaxNameLen {
			s.text = append(s.text, unicode.ToUpper(e.Char))
		}
	}
	return StateNameEntry
}

// isNameChar accepts ASCII letters and digits.
func isNameChar(c rune) bool {
	return c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c))
}

func (*nameEntryScreen) frame(*Machine) State { return StateNameEntry }

func (s *nameEntryScreen) render(m *Machine, r Renderer) {
	w, h := m.app.Board.Width, m.app.Board.Height
	r.Clear(colorBackground)
	drawLogo(m, r)

	r.Text("Type your name (up to 8 letters):", w/2, h/2-60, colorText, core.AlignCenter)

	box := s.inputBox(m)
	border := colorInputInactive
	if s.active {
		border = colorInputActive
	}
	r.Outline(box, border)

	c := box.Center()
	r.Text(string(s.text), c.X, c.Y, colorText, core.AlignCenter)

	if s.valid() {
		r.Text("Press ENTER to start", w/2, h-50, colorText, core.AlignCenter)
	}
}

func (*nameEntryScreen) fps(m *Machine) int { return m.menuFPS() }
