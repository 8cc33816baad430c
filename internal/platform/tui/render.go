package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ansiColors maps core colors to terminal color codes.
// ColorDefault has no entry and leaves the terminal color alone.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:       lipgloss.Color("0"),
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorGreen:       lipgloss.Color("2"),
	core.ColorYellow:      lipgloss.Color("3"),
	core.ColorBlue:        lipgloss.Color("4"),
	core.ColorMagenta:     lipgloss.Color("5"),
	core.ColorCyan:        lipgloss.Color("6"),
	core.ColorWhite:       lipgloss.Color("15"),
	core.ColorBrightGreen: lipgloss.Color("10"),
	core.ColorGray:        lipgloss.Color("240"),
	core.ColorLightGray:   lipgloss.Color("248"),
	core.ColorSilver:      lipgloss.Color("250"),
	core.ColorDarkGreen:   lipgloss.Color("22"),
	core.ColorDarkRed:     lipgloss.Color("52"),
}

type styleKey struct {
	fg, bg core.Color
}

// Painter converts a Screen into styled text. Styles are built once per
// color pair and reused across frames.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style
}

// NewPainter returns a painter that styles output for r.
// A nil renderer uses the default lipgloss renderer.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[styleKey]lipgloss.Style),
	}
}

func (p *Painter) style(k styleKey) lipgloss.Style {
	if s, ok := p.styles[k]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if c, ok := ansiColors[k.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := ansiColors[k.bg]; ok {
		s = s.Background(c)
	}
	p.styles[k] = s
	return s
}

// Paint renders the screen row by row.
// Adjacent cells with the same colors share one styled run.
func (p *Painter) Paint(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.Get(x, y)
			k := styleKey{fg: first.Fg, bg: first.Bg}

			run.Reset()
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Fg != k.fg || cell.Bg != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.style(k).Render(run.String()))
		}
	}
	return sb.String()
}
