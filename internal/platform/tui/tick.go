// Package tui hosts the snake state machine in a Bubble Tea program.
// It turns terminal input into core events and paints the cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent when the next frame is due.
type FrameMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 1
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
