package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-racer/internal/core"
	"github.com/vovakirdan/lane-racer/internal/racer"
)

// KeyMap holds the terminal key bindings for each logical key.
type KeyMap struct {
	Start   key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Quit    key.Binding
	Escape  key.Binding
	Close   key.Binding

	Screenshot key.Binding // Handled by the model, not the game
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("o", "O"),
			key.WithHelp("o", "start"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "A", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("d/→", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Resolve translates a key message into a game event.
// Returns false for keys with no binding.
func (km KeyMap) Resolve(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, km.Close):
		return core.Close(), true
	case key.Matches(msg, km.Start):
		return core.KeyDown(core.KeyStart), true
	case key.Matches(msg, km.Left):
		return core.KeyDown(core.KeyLeft), true
	case key.Matches(msg, km.Right):
		return core.KeyDown(core.KeyRight), true
	case key.Matches(msg, km.Restart):
		return core.KeyDown(core.KeyRestart), true
	case key.Matches(msg, km.Quit):
		return core.KeyDown(core.KeyQuit), true
	case key.Matches(msg, km.Escape):
		return core.KeyDown(core.KeyEscape), true
	}
	return core.Event{}, false
}

// HelpFor returns the bindings worth showing in the given session state.
func (km KeyMap) HelpFor(s racer.Session) []key.Binding {
	switch s {
	case racer.Waiting:
		return []key.Binding{km.Start, km.Close}
	case racer.Playing:
		return []key.Binding{km.Left, km.Right, km.Close}
	case racer.GameOver:
		return []key.Binding{km.Restart, km.Quit}
	default:
		return nil
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Start, km.Left, km.Right, km.Restart, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Start, km.Restart},
		{km.Left, km.Right},
		{km.Quit, km.Escape, km.Close},
		{km.Screenshot},
	}
}
