// Package tui runs Lane Racer in a terminal with Bubble Tea. It handles the
// frame loop, key mapping, and drawing the game's cell grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game loop iteration.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
