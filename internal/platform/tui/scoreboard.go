package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/highscore"
)

// ScoreboardKeyMap defines key bindings for the scoreboard view.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Help key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Help}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Help},
	}
}

func defaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Back: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ScoreboardModel shows the persisted best scores as a table.
type ScoreboardModel struct {
	records []highscore.Record
	ranked  bool
	table   table.Model
	keys    ScoreboardKeyMap
	help    help.Model
	width   int
	height  int
}

// NewScoreboardModel snapshots the board's current entries.
func NewScoreboardModel(board *highscore.Board) ScoreboardModel {
	records := board.Top(0)
	m := ScoreboardModel{
		records: records,
		ranked:  board.Ranked(),
		keys:    defaultScoreboardKeyMap(),
		help:    help.New(),
	}
	m.table = m.buildTable()
	return m
}

func (m ScoreboardModel) columns() []table.Column {
	if !m.ranked {
		return []table.Column{
			{Title: "Best", Width: 12},
		}
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 12},
		{Title: "Score", Width: 8},
	}
}

func (m ScoreboardModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.records))
	for i, r := range m.records {
		if !m.ranked {
			rows = append(rows, table.Row{fmt.Sprintf("%d", r.Score)})
			continue
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			r.Name,
			fmt.Sprintf("%d", r.Score),
		})
	}
	return rows
}

func (m ScoreboardModel) buildTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(highscore.MaxEntries+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10")).
		Render("SNAKE - BEST SCORES")
	b.WriteString(title)
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Render("Nobody has played yet!"))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// RunScoreboard runs the interactive scoreboard.
func RunScoreboard(board *highscore.Board, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(NewScoreboardModel(board), append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	_, err := p.Run()
	return err
}

// WritePlainScores prints the entries without any styling, one per line.
func WritePlainScores(w io.Writer, board *highscore.Board) error {
	records := board.Top(0)
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "Nobody has played yet!")
		return err
	}
	for i, r := range records {
		var err error
		if board.Ranked() {
			_, err = fmt.Fprintf(w, "%2d. %-8s %d\n", i+1, r.Name, r.Score)
		} else {
			_, err = fmt.Fprintf(w, "Best score: %d\n", r.Score)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
