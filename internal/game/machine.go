package game

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Machine runs the screens for one player. The host calls Frame once per
// tick with the events gathered since the previous tick, then Render, and
// schedules the next tick after 1/FrameRate seconds.
type Machine struct {
	app     *App
	screens map[State]screen
	current screen

	name      string // Player name, kept across retries
	session   *snake.Session
	lastScore int
	pointer   core.Point

	done bool
	err  error
}

// NewMachine creates a machine showing the menu.
func NewMachine(app *App) *Machine {
	m := &Machine{
		app: app,
		screens: map[State]screen{
			StateMenu:      &menuScreen{},
			StateNameEntry: &nameEntryScreen{},
			StatePlaying:   &playingScreen{},
			StatePaused:    &pausedScreen{},
			StateGameOver:  &gameOverScreen{},
		},
	}
	m.current = m.screens[StateMenu]
	return m
}

// Frame delivers one frame of input and advances the active screen.
// It reports true once the machine has finished; err is non-nil only for
// fatal errors such as a board with no room for food.
func (m *Machine) Frame(events []core.Event) (done bool, err error) {
	if m.done {
		return true, m.err
	}

	for _, ev := range events {
		if _, ok := ev.(core.QuitEvent); ok {
			m.finish(nil)
			return true, nil
		}
	}

	for _, ev := range events {
		switch e := ev.(type) {
		case core.MouseMoveEvent:
			m.pointer = e.Pos
		case core.MouseDownEvent:
			m.pointer = e.Pos
		}
		if err := m.transition(m.current.handle(m, ev)); err != nil || m.done {
			return true, err
		}
	}

	if err := m.transition(m.current.frame(m)); err != nil || m.done {
		return true, err
	}
	return false, nil
}

// transition switches screens when next differs from the active one.
func (m *Machine) transition(next State) error {
	if next == m.current.state() {
		return nil
	}
	if next == StateQuit {
		m.finish(nil)
		return nil
	}

	from := m.current.state()
	m.current = m.screens[next]
	m.app.Logger.Debug("screen change", "from", from, "to", next)

	if err := m.current.enter(m); err != nil {
		m.app.Logger.Error("cannot enter screen", "screen", next, "error", err)
		m.finish(err)
		return err
	}
	return nil
}

func (m *Machine) finish(err error) {
	m.done = true
	m.err = err
}

// Render draws the active screen.
func (m *Machine) Render(r Renderer) {
	if m.done {
		return
	}
	m.current.render(m, r)
}

// FrameRate returns the ticks per second wanted by the active screen.
func (m *Machine) FrameRate() int {
	fps := m.current.fps(m)
	if fps <= 0 {
		return 1
	}
	return fps
}

// State returns the active screen, or StateQuit once finished.
func (m *Machine) State() State {
	if m.done {
		return StateQuit
	}
	return m.current.state()
}

// Done reports whether the machine has finished.
func (m *Machine) Done() bool {
	return m.done
}

// Name returns the player name entered last.
func (m *Machine) Name() string {
	return m.name
}

// Session returns the current or last play session.
func (m *Machine) Session() *snake.Session {
	return m.session
}

// LastScore returns the score of the last finished session.
func (m *Machine) LastScore() int {
	return m.lastScore
}

// Board returns the playfield size in pixels.
func (m *Machine) Board() snake.Board {
	return m.app.Board
}

func (m *Machine) menuFPS() int {
	return m.app.Config.MenuFPS
}
