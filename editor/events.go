package editor

import "github.com/iw2rmb/promptweight/buffer"

type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Change is the last text mutation, when this update made one.
	Change    buffer.Change
	HasChange bool

	Text string
}

func buildChangeEvent(b *buffer.Buffer, prevVersion uint64) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if ch, ok := b.LastChange(); ok && ch.VersionBefore >= prevVersion {
		ev.Change = ch
		ev.HasChange = true
	}
	return ev
}
