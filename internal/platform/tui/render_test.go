package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// plainPainter writes no escape codes: a renderer on a non-terminal
// writer detects the ASCII profile.
func plainPainter() *Painter {
	return NewPainter(lipgloss.NewRenderer(io.Discard))
}

func TestPaintPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.Set(3, 1, core.Cell{Rune: '#', Fg: core.ColorGreen, Bg: core.ColorBlack})

	got := plainPainter().Paint(s)
	want := "ab  \n   #"
	if got != want {
		t.Errorf("Paint() = %q, want %q", got, want)
	}
}

func TestPaintCachesStylePerColorPair(t *testing.T) {
	s := core.NewScreen(3, 3)
	s.Set(0, 0, core.Cell{Rune: 'x', Fg: core.ColorRed})
	s.Set(1, 1, core.Cell{Rune: 'y', Fg: core.ColorRed})
	s.Set(2, 2, core.Cell{Rune: 'z', Fg: core.ColorRed, Bg: core.ColorBlue})

	p := plainPainter()
	p.Paint(s)
	p.Paint(s)

	// default/default, red/default, red/blue
	if len(p.styles) != 3 {
		t.Errorf("cached %d styles, want 3", len(p.styles))
	}
}

func TestPaintEmptyScreen(t *testing.T) {
	if got := plainPainter().Paint(core.NewScreen(0, 0)); got != "" {
		t.Errorf("Paint() = %q, want empty", got)
	}
}
