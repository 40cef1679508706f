package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bricker/internal/core"
)

// GameKeyMap binds keys to game actions. It doubles as the help bar source.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Yes        key.Binding
	No         key.Binding
	Pause      key.Binding
	Restart    key.Binding
	ForceWin   key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Restart, k.ForceWin, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Yes, k.No},
		{k.Pause, k.Restart, k.ForceWin},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings. The force-win key only
// works when debug is set.
func DefaultGameKeyMap(debug bool) GameKeyMap {
	k := GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "play again"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "leave"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		ForceWin: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "win"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	k.ForceWin.SetEnabled(debug)
	return k
}

// Action translates a key message to a game action.
// Screenshot is handled by the model and maps to ActionNone.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Yes):
		return core.ActionConfirm
	case key.Matches(msg, k.No):
		return core.ActionDecline
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.ForceWin):
		return core.ActionForceWin
	}
	return core.ActionNone
}
