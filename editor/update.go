package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/promptweight/buffer"
	"github.com/iw2rmb/promptweight/weight"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	// Pasted text is inserted literally and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m
	}

	km := m.cfg.KeyMap
	move := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) {
		m.buf.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend})
	}
	edit := func(fn func()) {
		if !m.cfg.ReadOnly {
			fn()
		}
	}

	switch {
	case key.Matches(msg, km.WeightUpFast):
		edit(func() { m.adjustWeight(weight.Up, true) })
	case key.Matches(msg, km.WeightDownFast):
		edit(func() { m.adjustWeight(weight.Down, true) })
	case key.Matches(msg, km.WeightUp):
		edit(func() { m.adjustWeight(weight.Up, false) })
	case key.Matches(msg, km.WeightDown):
		edit(func() { m.adjustWeight(weight.Down, false) })

	case key.Matches(msg, km.Left):
		move(buffer.MoveGrapheme, buffer.DirLeft, false)
	case key.Matches(msg, km.Right):
		move(buffer.MoveGrapheme, buffer.DirRight, false)
	case key.Matches(msg, km.Up):
		move(buffer.MoveLine, buffer.DirUp, false)
	case key.Matches(msg, km.Down):
		move(buffer.MoveLine, buffer.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		move(buffer.MoveGrapheme, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		move(buffer.MoveGrapheme, buffer.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		move(buffer.MoveLine, buffer.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		move(buffer.MoveLine, buffer.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		move(buffer.MoveWord, buffer.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		move(buffer.MoveWord, buffer.DirRight, false)
	case key.Matches(msg, km.TagLeft):
		move(buffer.MoveTag, buffer.DirLeft, false)
	case key.Matches(msg, km.TagRight):
		move(buffer.MoveTag, buffer.DirRight, false)

	case key.Matches(msg, km.Home):
		move(buffer.MoveLine, buffer.DirHome, false)
	case key.Matches(msg, km.End):
		move(buffer.MoveLine, buffer.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		move(buffer.MoveDoc, buffer.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		move(buffer.MoveDoc, buffer.DirEnd, false)

	case key.Matches(msg, km.Backspace):
		edit(func() { m.buf.DeleteBackward() })
	case key.Matches(msg, km.Delete):
		edit(func() { m.buf.DeleteForward() })
	case key.Matches(msg, km.Enter):
		edit(func() { m.buf.InsertNewline() })

	case key.Matches(msg, km.Undo):
		edit(func() { _ = m.buf.Undo() })
	case key.Matches(msg, km.Redo):
		edit(func() { _ = m.buf.Redo() })

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if m.cfg.ReadOnly {
			m.copySelection()
		} else {
			m.cutSelection()
		}
	case key.Matches(msg, km.Paste):
		edit(m.pasteClipboard)

	case msg.Type == tea.KeyTab:
		edit(func() { m.buf.InsertText("\t") })
	case msg.Type == tea.KeySpace:
		edit(func() { m.buf.InsertText(" ") })
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		edit(func() { m.buf.InsertText(string(msg.Runes)) })
	}
	return m
}

// adjustWeight re-weights the target at the caret or selection and applies
// the result as one undoable edit. No-op results leave the buffer untouched.
func (m Model) adjustWeight(dir weight.Direction, shift bool) {
	cfg := m.cfg.weightConfig()
	start, end := m.buf.RuneSelection()
	res := weight.Adjust(m.buf.Text(), weight.Selection{Start: start, End: end}, cfg.Delta(dir, shift), cfg)
	if !res.Changed {
		return
	}
	m.buf.ReplaceRunes(res.Edit.Start, res.Edit.End, res.Edit.Replacement, res.Caret)
}

func (m Model) selectedText() string {
	start, end := m.buf.RuneSelection()
	if start == end {
		return ""
	}
	rs := []rune(m.buf.Text())
	return string(rs[start:end])
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.selectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.buf.InsertText(normalizeNewlines(s))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
