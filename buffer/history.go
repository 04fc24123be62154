package buffer

type bufferSnapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		text:   b.Text(),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}
	if !s.sel.active {
		return
	}
	anchor := b.clampPos(s.sel.anchor)
	end := b.clampPos(s.sel.end)
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

func pushBounded(stack []bufferSnapshot, s bufferSnapshot, limit int) []bufferSnapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	if b.opt.HistoryLimit <= 0 {
		return
	}
	b.hist.undo = pushBounded(b.hist.undo, prev, b.opt.HistoryLimit)
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo restores the state before the most recent change, cursor and
// selection included.
func (b *Buffer) Undo() bool {
	return b.travel(&b.hist.undo, &b.hist.redo, OriginUndo, false)
}

// Redo reapplies the most recently undone change.
func (b *Buffer) Redo() bool {
	return b.travel(&b.hist.redo, &b.hist.undo, OriginRedo, true)
}

// travel pops a snapshot from src and pushes the current state onto dst.
// Redo pushes are bounded by HistoryLimit like fresh edits; undo pushes
// onto the redo stack are not.
func (b *Buffer) travel(src, dst *[]bufferSnapshot, origin ChangeOrigin, bounded bool) bool {
	if len(*src) == 0 {
		return false
	}
	cur := b.snapshot()
	change := b.beginChange(origin)

	i := len(*src) - 1
	target := (*src)[i]
	*src = (*src)[:i]
	switch {
	case !bounded:
		*dst = append(*dst, cur)
	case b.opt.HistoryLimit > 0:
		*dst = pushBounded(*dst, cur, b.opt.HistoryLimit)
	}

	b.restore(target)
	b.version++
	if applied, ok := replacementAppliedEdit(cur.text, target.text); ok {
		change.addAppliedEdit(applied)
	}
	b.commitChange(change)
	return true
}
