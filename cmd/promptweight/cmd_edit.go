package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/promptweight/editor"
	"github.com/iw2rmb/promptweight/internal/config"
	"github.com/iw2rmb/promptweight/weight"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a prompt file interactively",
		Long: `Opens the prompt editor. ctrl+up/down (alt+up/down) change the weight
of the tag, selection or group at the caret; add shift for larger steps.
ctrl+s saves, esc or ctrl+q quits. When --config names a file, weight
settings reload as it changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runEdit(cmd.Context(), a, path)
		},
	}
}

func runEdit(ctx context.Context, a *app, path string) error {
	text, err := readPrompt(path)
	if err != nil {
		return err
	}
	// Sessions share one rotated log file.
	logger := a.logger.With(zap.String("session", uuid.NewString()), zap.String("file", path))
	logger.Info("edit session started", zap.Int("chars", utf8.RuneCountInString(text)))

	var updates <-chan *config.Config
	if a.configPath != "" {
		w, err := config.NewWatcher(a.configPath, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		if err := w.Start(ctx); err != nil {
			return err
		}
		updates = w.Updates()
	}

	var clip editor.Clipboard = systemClipboard{}
	if clipboard.Unsupported {
		logger.Info("system clipboard unavailable, using in-memory clipboard")
		clip = &editor.MemoryClipboard{}
	}
	m := newEditModel(a.cfg, path, text, clip, logger, updates)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

// readPrompt returns the file content, or "" for a missing file.
func readPrompt(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

type editKeyMap struct {
	Save key.Binding
	Quit key.Binding

	WeightUp   key.Binding
	WeightDown key.Binding
	Undo       key.Binding
}

func newEditKeyMap(km editor.KeyMap) editKeyMap {
	return editKeyMap{
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+q"), key.WithHelp("esc", "quit")),
		WeightUp:   km.WeightUp,
		WeightDown: km.WeightDown,
		Undo:       km.Undo,
	}
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.WeightUp, k.WeightDown, k.Undo, k.Save, k.Quit}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type configReloadedMsg struct{ cfg *config.Config }

type savedMsg struct {
	text string
	err  error
}

type editModel struct {
	editor editor.Model

	path    string
	saved   string
	message string

	weightCfg *atomic.Pointer[weight.Config]
	updates   <-chan *config.Config
	logger    *zap.Logger

	keys editKeyMap
	help help.Model

	statusStyle lipgloss.Style
	dirtyStyle  lipgloss.Style
}

func newEditModel(cfg *config.Config, path, text string, clip editor.Clipboard, logger *zap.Logger, updates <-chan *config.Config) editModel {
	wc := cfg.Weight.Weight()
	ptr := &atomic.Pointer[weight.Config]{}
	ptr.Store(&wc)

	m := editModel{
		path:        path,
		saved:       text,
		weightCfg:   ptr,
		updates:     updates,
		logger:      logger,
		keys:        newEditKeyMap(editor.DefaultKeyMap()),
		help:        help.New(),
		statusStyle: lipgloss.NewStyle().Faint(true),
		dirtyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
	m.editor = newPromptEditor(cfg, text, ptr, clip)
	return m
}

func newPromptEditor(cfg *config.Config, text string, wc *atomic.Pointer[weight.Config], clip editor.Clipboard) editor.Model {
	style := editor.DefaultStyle()
	source := func() weight.Config { return *wc.Load() }
	return editor.New(editor.Config{
		Text:         text,
		ShowLineNums: cfg.Editor.ShowLineNumbers,
		Style:        style,
		WrapMode:     wrapModeFromConfig(cfg.Editor.Wrap),
		TabWidth:     cfg.Editor.TabWidth,
		HistoryLimit: cfg.Editor.HistoryLimit,
		Clipboard:    clip,
		Highlighter:  style.WeightHighlighter(source),
		WeightSource: source,
	})
}

func wrapModeFromConfig(s string) editor.WrapMode {
	switch s {
	case "grapheme":
		return editor.WrapGrapheme
	case "none":
		return editor.WrapNone
	default:
		return editor.WrapWord
	}
}

func (m editModel) Init() tea.Cmd {
	return waitForConfig(m.updates)
}

// waitForConfig blocks until the watcher delivers a config. A nil or closed
// channel ends the loop.
func waitForConfig(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

func savePrompt(path, text string) tea.Cmd {
	return func() tea.Msg {
		err := os.WriteFile(path, []byte(text), 0o644)
		return savedMsg{text: text, err: err}
	}
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-2, 0))
		return m, nil

	case configReloadedMsg:
		wc := msg.cfg.Weight.Weight()
		m.weightCfg.Store(&wc)
		m.message = "config reloaded"
		m.logger.Info("weight config reloaded",
			zap.Float64("step", wc.Step),
			zap.Float64("min", wc.Min),
			zap.Float64("max", wc.Max))
		return m, waitForConfig(m.updates)

	case savedMsg:
		if msg.err != nil {
			m.message = "save failed: " + msg.err.Error()
			m.logger.Error("save failed", zap.String("path", m.path), zap.Error(msg.err))
			return m, nil
		}
		m.saved = msg.text
		m.message = "saved " + m.path
		m.logger.Info("saved", zap.String("path", m.path), zap.Int("bytes", len(msg.text)))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Save):
			if m.path == "" {
				m.message = "no file to save to"
				return m, nil
			}
			return m, savePrompt(m.path, m.editor.Text())
		}
		m.message = ""
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m editModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.editor.View(),
		m.statusLine(),
		m.help.View(m.keys),
	)
}

func (m editModel) statusLine() string {
	text := m.editor.Text()
	name := m.path
	if name == "" {
		name = "[scratch]"
	}
	if text != m.saved {
		name = m.dirtyStyle.Render(name + " *")
	}
	parts := []string{name, fmt.Sprintf("%d chars", utf8.RuneCountInString(text))}

	start, _ := m.editor.Buffer().RuneSelection()
	if seg, ok := segmentAtOffset(weight.Scan(text), start); ok {
		prec := m.weightCfg.Load().Precision
		parts = append(parts, fmt.Sprintf("%s %s", seg.Core, weight.FormatWeight(seg.Effective(), prec)))
	}
	if m.message != "" {
		parts = append(parts, m.message)
	}
	return m.statusStyle.Render(strings.Join(parts, " · "))
}

// segmentAtOffset returns the top-level segment whose span touches off.
func segmentAtOffset(segs []weight.Segment, off int) (weight.Segment, bool) {
	for _, s := range segs {
		if off >= s.Start && off <= s.End {
			return s, true
		}
	}
	return weight.Segment{}, false
}
