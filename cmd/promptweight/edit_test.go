package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iw2rmb/promptweight/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg
}

func update(t *testing.T, m editModel, msg tea.Msg) (editModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	em, ok := next.(editModel)
	require.True(t, ok)
	return em, cmd
}

func TestEditModel_WeightKeyAndStatus(t *testing.T) {
	m := newEditModel(testConfig(t), "", "red, hair", nil, zap.NewNop(), nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 10})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlUp})
	assert.Equal(t, "(red:1.1), hair", m.editor.Text())

	status := m.statusLine()
	assert.Contains(t, status, "[scratch] *")
	assert.Contains(t, status, "15 chars")
	assert.Contains(t, status, "red 1.1")
}

func TestEditModel_SaveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	m := newEditModel(testConfig(t), path, "blue eyes", nil, zap.NewNop(), nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlDown})
	require.Equal(t, "(blue:0.9) eyes", m.editor.Text())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(blue:0.9) eyes", string(data))

	status := m.statusLine()
	assert.NotContains(t, status, "*")
	assert.Contains(t, status, "saved "+path)
}

func TestEditModel_SaveWithoutPath(t *testing.T) {
	m := newEditModel(testConfig(t), "", "red", nil, zap.NewNop(), nil)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Contains(t, m.statusLine(), "no file to save to")
}

func TestEditModel_ConfigReloadChangesStep(t *testing.T) {
	updates := make(chan *config.Config, 1)
	m := newEditModel(testConfig(t), "", "red", nil, zap.NewNop(), updates)

	next := testConfig(t)
	next.Weight.Step = 0.5
	updates <- next

	cmd := m.Init()
	require.NotNil(t, cmd)
	m, cmd = update(t, m, cmd())
	assert.NotNil(t, cmd, "reload should keep waiting for updates")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlUp})
	assert.Equal(t, "(red:1.5)", m.editor.Text())
}

func TestEditModel_ConfigReloadChangesPrecision(t *testing.T) {
	updates := make(chan *config.Config, 1)
	m := newEditModel(testConfig(t), "", "red", nil, zap.NewNop(), updates)

	next := testConfig(t)
	next.Weight.Step = 0.6
	next.Weight.Precision = 0
	updates <- next
	m, _ = update(t, m, m.Init()())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlUp})
	assert.Equal(t, "(red:2)", m.editor.Text())
	assert.Contains(t, m.statusLine(), "red 2")
}

func TestEditModel_StopsWaitingWhenWatcherCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "promptweight.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := config.NewWatcher(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	m := newEditModel(testConfig(t), "", "red", nil, zap.NewNop(), w.Updates())
	cmd := m.Init()
	require.NotNil(t, cmd)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	require.NoError(t, w.Close())

	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("config wait did not return after Close")
	}
}

func TestEditModel_Quit(t *testing.T) {
	m := newEditModel(testConfig(t), "", "red", nil, zap.NewNop(), nil)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestReadPrompt(t *testing.T) {
	dir := t.TempDir()

	got, err := readPrompt(filepath.Join(dir, "missing.txt"))
	require.NoError(t, err)
	assert.Empty(t, got)

	path := filepath.Join(dir, "crlf.txt")
	require.NoError(t, os.WriteFile(path, []byte("a,\r\nb"), 0o644))
	got, err = readPrompt(path)
	require.NoError(t, err)
	assert.Equal(t, "a,\nb", got)
	assert.False(t, strings.Contains(got, "\r"))
}
