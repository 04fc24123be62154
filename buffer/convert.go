package buffer

import "unicode/utf8"

type OffsetClampMode uint8

const (
	// OffsetError rejects offsets outside the document or inside a grapheme
	// cluster.
	OffsetError OffsetClampMode = iota
	// OffsetClamp clamps out-of-range offsets into the document. Offsets
	// inside a cluster are still rejected.
	OffsetClamp
)

type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// GapBias picks a side when a rune offset falls inside a grapheme cluster.
type GapBias uint8

const (
	GapBiasLeft GapBias = iota
	GapBiasRight
)

// Gap is a rune offset with a bias for snapping to cluster boundaries.
type Gap struct {
	RuneOffset int
	Bias       GapBias
}

// unit measures a cluster in some offset unit (bytes or runes).
type unit func(cluster string) int

func byteLen(cluster string) int { return len(cluster) }

func runeLen(cluster string) int { return utf8.RuneCountInString(cluster) }

func (b *Buffer) PosFromByteOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, b.docLen(byteLen), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.offsetToPos(off, byteLen, nil)
}

func (b *Buffer) ByteOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	return b.posToOffset(pos, byteLen), true
}

func (b *Buffer) PosFromRuneOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, b.docLen(runeLen), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.offsetToPos(off, runeLen, nil)
}

func (b *Buffer) RuneOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	return b.posToOffset(pos, runeLen), true
}

func (b *Buffer) GapFromPos(pos Pos, bias GapBias) (Gap, bool) {
	if !validGapBias(bias) {
		return Gap{}, false
	}
	off, ok := b.RuneOffsetFromPos(pos, ConvertPolicy{ClampMode: OffsetError})
	if !ok {
		return Gap{}, false
	}
	return Gap{RuneOffset: off, Bias: bias}, true
}

// PosFromGap resolves g to a position. Offsets inside a grapheme cluster
// snap to the cluster start (GapBiasLeft) or end (GapBiasRight).
func (b *Buffer) PosFromGap(g Gap, p ConvertPolicy) (Pos, bool) {
	if !validGapBias(g.Bias) {
		return Pos{}, false
	}
	off, ok := clampOffset(g.RuneOffset, b.docLen(runeLen), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	bias := g.Bias
	return b.offsetToPos(off, runeLen, &bias)
}

func validGapBias(bias GapBias) bool {
	return bias == GapBiasLeft || bias == GapBiasRight
}

func clampOffset(off, limit int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > limit {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, limit), true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		if b.clampPos(pos) != pos {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return b.clampPos(pos), true
	default:
		return Pos{}, false
	}
}

func (b *Buffer) docLen(size unit) int {
	total := 0
	for row, line := range b.lines {
		for _, cluster := range line {
			total += size(cluster)
		}
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

// offsetToPos walks the document to off. A nil bias rejects offsets inside
// a cluster.
func (b *Buffer) offsetToPos(off int, size unit, bias *GapBias) (Pos, bool) {
	cur := 0
	for row, line := range b.lines {
		if off == cur {
			return Pos{Row: row}, true
		}
		for col, cluster := range line {
			next := cur + size(cluster)
			if off > cur && off < next {
				switch {
				case bias == nil:
					return Pos{}, false
				case *bias == GapBiasLeft:
					return Pos{Row: row, GraphemeCol: col}, true
				default:
					return Pos{Row: row, GraphemeCol: col + 1}, true
				}
			}
			cur = next
			if off == cur {
				return Pos{Row: row, GraphemeCol: col + 1}, true
			}
		}
		if row < len(b.lines)-1 {
			cur++ // '\n'
		}
	}
	return Pos{}, false
}

func (b *Buffer) posToOffset(pos Pos, size unit) int {
	off := 0
	for row := 0; row < pos.Row; row++ {
		for _, cluster := range b.lines[row] {
			off += size(cluster)
		}
		off++
	}
	for col := 0; col < pos.GraphemeCol; col++ {
		off += size(b.lines[pos.Row][col])
	}
	return off
}
