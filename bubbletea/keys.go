package bubbletea

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/fwojciec/serieslog"
)

var _ help.KeyMap = KeyMap{}

// KeyMap defines the key bindings for the application.
type KeyMap struct {
	Start    key.Binding
	Stop     key.Binding
	Submit   key.Binding
	Continue key.Binding
	Restart  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "stop"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/stop"),
		),
		Continue: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "continue"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// forState enables exactly the bindings that apply in state s, mirroring
// the Start/Stop button enablement of the controller.
func (k KeyMap) forState(s serieslog.State) KeyMap {
	k.Start.SetEnabled(s == serieslog.Idle)
	k.Stop.SetEnabled(s == serieslog.Running)
	k.Submit.SetEnabled(s != serieslog.PendingResumeDecision)
	k.Continue.SetEnabled(s == serieslog.PendingResumeDecision)
	k.Restart.SetEnabled(s == serieslog.PendingResumeDecision)
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Continue, k.Restart, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop, k.Submit},
		{k.Continue, k.Restart},
		{k.Help, k.Quit},
	}
}
