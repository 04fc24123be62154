package buffer

// RuneSelection returns the selection as rune offsets. Without a selection
// both offsets equal the cursor offset.
func (b *Buffer) RuneSelection() (start, end int) {
	policy := ConvertPolicy{ClampMode: OffsetClamp}
	r, ok := b.Selection()
	if !ok {
		off, _ := b.RuneOffsetFromPos(b.cursor, policy)
		return off, off
	}
	start, _ = b.RuneOffsetFromPos(r.Start, policy)
	end, _ = b.RuneOffsetFromPos(r.End, policy)
	return start, end
}

// ReplaceRunes replaces the rune range [start, end) with text as one
// undoable change and places the cursor at rune offset cursor, measured in
// the resulting document. Offsets inside a grapheme cluster widen the range
// to whole clusters. It reports whether the document changed.
func (b *Buffer) ReplaceRunes(start, end int, text string, cursor int) bool {
	if start > end {
		start, end = end, start
	}
	policy := ConvertPolicy{ClampMode: OffsetClamp}
	from, ok := b.PosFromGap(Gap{RuneOffset: start, Bias: GapBiasLeft}, policy)
	if !ok {
		return false
	}
	to, ok := b.PosFromGap(Gap{RuneOffset: end, Bias: GapBiasRight}, policy)
	if !ok {
		return false
	}

	edits := []TextEdit{{Range: Range{Start: from, End: to}, Text: text}}
	return b.commitEdits(OriginReplace, edits, func(last Pos) Pos {
		if p, ok := b.PosFromGap(Gap{RuneOffset: cursor, Bias: GapBiasLeft}, policy); ok {
			return p
		}
		return last
	})
}
