package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/todo/internal/notify"
	"github.com/tgienger/todo/internal/todo"
	"github.com/tgienger/todo/internal/ui/views"
)

func newTestApp(buf *bytes.Buffer) (*App, *todo.List) {
	toasts := notify.NewQueue(time.Minute, 3)
	logger := log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
	list := todo.New(notify.Multi{toasts, notify.NewLogger(logger)}, todo.WithLogger(logger))
	app := NewApp(list, toasts, views.Options{Title: "My Tasks", CharLimit: 100}, logger)
	return app, list
}

func TestAppForwardsToView(t *testing.T) {
	var buf bytes.Buffer
	app, list := newTestApp(&buf)

	assert.NotNil(t, app.Init())
	app.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	assert.Equal(t, 60, app.width)
	assert.Equal(t, 40, app.height)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Buy milk")})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)

	require.Equal(t, 1, list.Len())
	assert.Contains(t, app.View(), "Buy milk")

	out := buf.String()
	assert.Contains(t, out, "window resized")
	assert.Contains(t, out, "task added")
	assert.Contains(t, out, todo.AddedTitle)
}

func TestAppQuit(t *testing.T) {
	var buf bytes.Buffer
	app, _ := newTestApp(&buf)

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Same(t, app, model)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
