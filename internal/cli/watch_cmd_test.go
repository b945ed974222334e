package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evmartin/brigade/internal/domain"
)

func TestWatchModel_QuitKeys(t *testing.T) {
	app := testApp(t)
	s := seedSession(t, app)

	for _, key := range []string{"q", "ctrl+c", "esc"} {
		m := newWatchModel(app, s)
		updated, cmd := m.Update(keyMsgFor(key))
		wm := updated.(watchModel)
		assert.True(t, wm.quitting, "key %q should quit", key)
		require.NotNil(t, cmd, "key %q should produce the quit command", key)
	}
}

func keyMsgFor(key string) tea.KeyMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestWatchModel_TickAdvancesClock(t *testing.T) {
	app := testApp(t)
	s := seedSession(t, app)

	m := newWatchModel(app, s)
	at := time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC)

	updated, cmd := m.Update(watchTickMsg(at))
	wm := updated.(watchModel)
	assert.Equal(t, at, wm.now)
	assert.NotNil(t, cmd, "tick schedules a reload and the next tick")
}

func TestWatchModel_ReloadReplacesSession(t *testing.T) {
	app := testApp(t)
	s := seedSession(t, app)

	m := newWatchModel(app, s)
	fresh := *s
	fresh.Title = "reloaded"

	updated, _ := m.Update(watchReloadMsg{session: &fresh})
	wm := updated.(watchModel)
	assert.Equal(t, "reloaded", wm.session.Title)
	assert.False(t, wm.quitting)
}

func TestWatchModel_QuitsOnTerminalSession(t *testing.T) {
	app := testApp(t)
	s := seedSession(t, app)

	m := newWatchModel(app, s)
	done := *s
	done.Status = domain.SessionCancelled

	updated, cmd := m.Update(watchReloadMsg{session: &done})
	wm := updated.(watchModel)
	assert.True(t, wm.quitting)
	assert.NotNil(t, cmd)
}

func TestWatchModel_ReloadErrorKeptForView(t *testing.T) {
	app := testApp(t)
	s := seedSession(t, app)

	m := newWatchModel(app, s)
	updated, _ := m.Update(watchReloadMsg{err: assert.AnError})
	wm := updated.(watchModel)
	require.Error(t, wm.loadErr)
	assert.Contains(t, wm.View(), "refresh failed")
}

func TestWatchModel_View(t *testing.T) {
	app := testApp(t)
	s := seedSession(t, app)

	m := newWatchModel(app, s)
	view := m.View()
	assert.Contains(t, view, "CLI test batch")
	assert.Contains(t, view, "Current step: 1")
	assert.Contains(t, view, "q to quit")
}
