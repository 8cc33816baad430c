package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap binds terminal keys to semantic game keys.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Pause     key.Binding
	Confirm   key.Binding
	Backspace key.Binding
	Back      key.Binding
	Retry     key.Binding
	Mute      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Mute, k.ForceQuit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Mute, k.Confirm, k.Backspace},
		{k.Retry, k.Back, k.Quit, k.ForceQuit},
	}
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "erase"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit from menu"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Translate converts a key press into game events.
// Printable characters produce a TextInputEvent as well as any bound key,
// so "w" both steers the snake and types a letter on the name screen.
func (k KeyMap) Translate(msg tea.KeyMsg) []core.Event {
	if key.Matches(msg, k.ForceQuit) {
		return []core.Event{core.QuitEvent{}}
	}

	var events []core.Event
	if gk := k.gameKey(msg); gk != core.KeyNone {
		events = append(events, core.KeyDownEvent{Key: gk})
	}

	switch msg.Type {
	case tea.KeySpace:
		events = append(events, core.TextInputEvent{Char: ' '})
	case tea.KeyRunes:
		if msg.Alt || msg.Paste {
			break
		}
		for _, r := range msg.Runes {
			events = append(events, core.TextInputEvent{Char: r})
		}
	}
	return events
}

func (k KeyMap) gameKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Up):
		return core.KeyUp
	case key.Matches(msg, k.Down):
		return core.KeyDown
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Pause):
		return core.KeyPause
	case key.Matches(msg, k.Confirm):
		return core.KeyConfirm
	case key.Matches(msg, k.Backspace):
		return core.KeyBackspace
	case key.Matches(msg, k.Back):
		return core.KeyBack
	case key.Matches(msg, k.Retry):
		return core.KeyRetry
	case key.Matches(msg, k.Mute):
		return core.KeyMute
	case key.Matches(msg, k.Quit):
		return core.KeyQuit
	}
	return core.KeyNone
}

// MouseMapper converts terminal mouse positions to board pixels.
// Origin is the terminal cell where the board's top-left corner is drawn.
type MouseMapper struct {
	View   core.Viewport
	Origin core.Point
}

// Translate converts a mouse message into a game event.
// It reports false for events the game does not use.
func (mm MouseMapper) Translate(msg tea.MouseMsg) (core.Event, bool) {
	pos := mm.View.Pixel(msg.X-mm.Origin.X, msg.Y-mm.Origin.Y)
	switch {
	case msg.Action == tea.MouseActionMotion:
		return core.MouseMoveEvent{Pos: pos}, true
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return core.MouseDownEvent{Pos: pos}, true
	}
	return nil, false
}
