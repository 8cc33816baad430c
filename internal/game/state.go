package game

import "github.com/vovakirdan/tui-snake/internal/core"

// State identifies the active screen.
type State int

const (
	StateMenu State = iota
	StateNameEntry
	StatePlaying
	StatePaused
	StateGameOver
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateNameEntry:
		return "name_entry"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// screen is one state of the machine. handle and frame return the state to
// move to, which is the screen's own state to stay.
type screen interface {
	state() State
	enter(m *Machine) error
	handle(m *Machine, ev core.Event) State
	frame(m *Machine) State
	render(m *Machine, r Renderer)
	fps(m *Machine) int
}
