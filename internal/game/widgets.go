package game

import "github.com/vovakirdan/tui-snake/internal/core"

const (
	colorBackground     = core.ColorBlack
	colorText           = core.ColorWhite
	colorButtonInactive = core.ColorGray
	colorButtonActive   = core.ColorLightGray
	colorInputActive    = core.ColorLightGray
	colorInputInactive  = core.ColorGray
	colorFoodFallback   = core.ColorRed
	colorSoundOn        = core.ColorDarkGreen
	colorSoundOff       = core.ColorDarkRed
)

// button is a clickable labelled rectangle.
type button struct {
	label string
	rect  core.Rect
}

// clicked reports whether ev is a mouse press inside the button.
func (b button) clicked(ev core.Event) bool {
	down, ok := ev.(core.MouseDownEvent)
	return ok && b.rect.Contains(down.Pos)
}

// draw paints the button, highlighted while the pointer hovers over it.
func (b button) draw(r Renderer, pointer core.Point) {
	fill := colorButtonInactive
	if b.rect.Contains(pointer) {
		fill = colorButtonActive
	}
	r.FillRect(b.rect, fill)
	c := b.rect.Center()
	r.Text(b.label, c.X, c.Y, colorText, core.AlignCenter)
}

// centeredRect returns a w×h rectangle centered on (cx, cy).
func centeredRect(cx, cy, w, h int) core.Rect {
	return core.NewRect(cx-w/2, cy-h/2, w, h)
}

// isKey reports whether ev is a press of any of keys.
func isKey(ev core.Event, keys ...core.Key) bool {
	down, ok := ev.(core.KeyDownEvent)
	if !ok {
		return false
	}
	for _, k := range keys {
		if down.Key == k {
			return true
		}
	}
	return false
}
