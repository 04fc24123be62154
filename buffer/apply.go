package buffer

// Apply applies edits in order as one undoable change. Each edit's range is
// interpreted against the document as left by the previous edit.
//
// Ranges are clamped into the document. The cursor moves to the end of the
// last effective edit and the selection is cleared if anything changed.
func (b *Buffer) Apply(edits ...TextEdit) {
	b.commitEdits(OriginEdit, edits, nil)
}

// commitEdits is the single write path for text mutations. place, when
// set, picks the final cursor from the end of the last effective edit; it
// runs against the edited document.
func (b *Buffer) commitEdits(origin ChangeOrigin, edits []TextEdit, place func(last Pos) Pos) bool {
	if len(edits) == 0 {
		return false
	}

	prev := b.snapshot()
	change := b.beginChange(origin)

	last, dirty := b.cursor, false
	for _, e := range edits {
		next, applied, ok := b.replaceRange(e.Range, e.Text)
		if !ok {
			continue
		}
		dirty = true
		last = next
		change.addAppliedEdit(applied)
	}
	if !dirty {
		return false
	}

	if place != nil {
		last = place(last)
	}
	b.cursor = b.clampPos(last)
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	b.commitChange(change)
	return true
}
