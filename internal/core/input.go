package core

// Key is a semantic key, abstracted from physical key presses.
type Key int

const (
	KeyNone      Key = iota
	KeyUp            // Up arrow, W
	KeyDown          // Down arrow, S
	KeyLeft          // Left arrow, A
	KeyRight         // Right arrow, D
	KeyPause         // P
	KeyConfirm       // Enter
	KeyBackspace     // Backspace
	KeyBack          // Esc, B
	KeyRetry         // R
	KeyMute          // M
	KeyQuit          // Q
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyPause:
		return "Pause"
	case KeyConfirm:
		return "Confirm"
	case KeyBackspace:
		return "Backspace"
	case KeyBack:
		return "Back"
	case KeyRetry:
		return "Retry"
	case KeyMute:
		return "Mute"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is one input event delivered to the game. The concrete types form a
// closed set: QuitEvent, KeyDownEvent, MouseDownEvent, MouseMoveEvent and
// TextInputEvent.
type Event interface {
	isEvent()
}

// QuitEvent asks the game to terminate immediately, from any screen.
type QuitEvent struct{}

// KeyDownEvent reports a key press.
type KeyDownEvent struct {
	Key Key
}

// MouseDownEvent reports a primary button press at a board pixel position.
type MouseDownEvent struct {
	Pos Point
}

// MouseMoveEvent reports a new pointer position in board pixels.
type MouseMoveEvent struct {
	Pos Point
}

// TextInputEvent carries a printable character typed by the player.
type TextInputEvent struct {
	Char rune
}

func (QuitEvent) isEvent()      {}
func (KeyDownEvent) isEvent()   {}
func (MouseDownEvent) isEvent() {}
func (MouseMoveEvent) isEvent() {}
func (TextInputEvent) isEvent() {}
