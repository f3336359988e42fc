package bubbletea_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/serieslog"
	bt "github.com/fwojciec/serieslog/bubbletea"
	"github.com/fwojciec/serieslog/mock"
	"github.com/stretchr/testify/require"
)

var clockTime = time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

// initModel creates a model over store and sends a WindowSizeMsg.
func initModel(t *testing.T, store serieslog.Store) bt.Model {
	t.Helper()
	ctrl := serieslog.NewController(store, serieslog.WithClock(func() time.Time { return clockTime }))
	m := bt.New(ctrl, serieslog.DefaultTheme())
	return updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// typeText sends each rune of s as a key press.
func typeText(t *testing.T, m bt.Model, s string) bt.Model {
	t.Helper()
	for _, r := range s {
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func openStore() *mock.MemStore {
	return &mock.MemStore{Records: []serieslog.Record{
		serieslog.NewRecord("2024-01-01 10:00:00", "", ""),
	}}
}
