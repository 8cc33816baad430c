package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// ModelOptions configures a Model.
type ModelOptions struct {
	View core.Viewport

	// Painter styles the output. Nil uses the default lipgloss renderer.
	Painter *Painter

	// ScreenshotDir receives ctrl+s dumps. Empty disables screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that drives one game machine.
type Model struct {
	machine *game.Machine
	screen  *core.Screen
	canvas  *core.Canvas
	painter *Painter
	mouse   MouseMapper
	keys    KeyMap
	help    help.Model

	screenshotDir string
	screenshot    key.Binding

	pending  []core.Event
	width    int
	height   int
	err      error
	quitting bool
}

// NewModel creates a model for the machine and draws its first frame.
func NewModel(machine *game.Machine, opts ModelOptions) Model {
	b := machine.Board()
	cols, rows := opts.View.Cells(b.Width, b.Height)
	screen := core.NewScreen(cols, rows)

	painter := opts.Painter
	if painter == nil {
		painter = NewPainter(nil)
	}

	m := Model{
		machine:       machine,
		screen:        screen,
		canvas:        core.NewCanvas(screen, opts.View),
		painter:       painter,
		mouse:         MouseMapper{View: opts.View},
		keys:          DefaultKeyMap(),
		help:          help.New(),
		screenshotDir: opts.ScreenshotDir,
		screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
	machine.Render(m.canvas)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.machine.FrameRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.mouse.Translate(msg); ok {
			m.pending = append(m.pending, ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.mouse.Origin = m.origin()
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	events := m.keys.Translate(msg)
	for _, ev := range events {
		if _, ok := ev.(core.QuitEvent); ok {
			// Quit without waiting for the next tick.
			m.pending = append(m.pending, ev)
			return m.handleFrame()
		}
	}
	m.pending = append(m.pending, events...)
	return m, nil
}

// handleFrame feeds the queued events to the machine and schedules the
// next frame at the rate the active screen asks for.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	done, err := m.machine.Frame(m.pending)
	m.pending = nil
	if done {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	m.machine.Render(m.canvas)
	return m, tickCmd(m.machine.FrameRate())
}

// frameSize is the terminal area used by the bordered board and the help line.
func (m Model) frameSize() (w, h int) {
	return m.screen.Width() + 2, m.screen.Height() + 3
}

// origin returns the terminal cell where the board's first cell is drawn.
func (m Model) origin() core.Point {
	w, h := m.frameSize()
	return core.Point{
		X: max(0, (m.width-w)/2) + 1,
		Y: max(0, (m.height-h)/2) + 1,
	}
}

func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	w, h := m.frameSize()
	return m.width < w || m.height < h
}

var boardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		w, h := m.frameSize()
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", w, h, m.width, m.height)
	}

	o := m.origin()
	body := boardStyle.Render(m.painter.Paint(m.screen)) + "\n" + m.help.View(m.keys)
	return lipgloss.NewStyle().
		MarginLeft(o.X - 1).
		MarginTop(o.Y - 1).
		Render(body)
}

// Err returns the fatal error that ended the machine, if any.
func (m Model) Err() error {
	return m.err
}

// saveScreenshot writes the current cells as plain text.
func (m Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(strings.TrimRight(m.screen.String(), "\n")+"\n"), 0o600)
}

// Run hosts the machine in a full-screen terminal program until it finishes.
func Run(machine *game.Machine, opts ModelOptions, progOpts ...tea.ProgramOption) error {
	p := tea.NewProgram(
		NewModel(machine, opts),
		append([]tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
		}, progOpts...)...,
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
