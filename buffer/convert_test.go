package buffer

import "testing"

func TestBuffer_PosFromByteOffset(t *testing.T) {
	b := New("ab\ncd", Options{})

	clamp := ConvertPolicy{ClampMode: OffsetClamp}
	errMode := ConvertPolicy{ClampMode: OffsetError}

	cases := []struct {
		name string
		off  int
		p    ConvertPolicy
		want Pos
		ok   bool
	}{
		{name: "bof", off: 0, p: errMode, want: Pos{Row: 0, GraphemeCol: 0}, ok: true},
		{name: "line-0-middle", off: 1, p: errMode, want: Pos{Row: 0, GraphemeCol: 1}, ok: true},
		{name: "line-0-end", off: 2, p: errMode, want: Pos{Row: 0, GraphemeCol: 2}, ok: true},
		{name: "newline-after", off: 3, p: errMode, want: Pos{Row: 1, GraphemeCol: 0}, ok: true},
		{name: "eof", off: 5, p: errMode, want: Pos{Row: 1, GraphemeCol: 2}, ok: true},
		{name: "below-range-error", off: -1, p: errMode, ok: false},
		{name: "above-range-error", off: 6, p: errMode, ok: false},
		{name: "below-range-clamp", off: -1, p: clamp, want: Pos{Row: 0, GraphemeCol: 0}, ok: true},
		{name: "above-range-clamp", off: 6, p: clamp, want: Pos{Row: 1, GraphemeCol: 2}, ok: true},
	}

	for _, tc := range cases {
		got, ok := b.PosFromByteOffset(tc.off, tc.p)
		if ok != tc.ok {
			t.Fatalf("%s: ok=%v, want %v", tc.name, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("%s: pos=%v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBuffer_PosFromByteOffset_RejectsInteriorClusterBytes(t *testing.T) {
	b := New("é!", Options{})
	if _, ok := b.PosFromByteOffset(1, ConvertPolicy{ClampMode: OffsetClamp}); ok {
		t.Fatalf("expected interior byte offset to be rejected")
	}
	if got, ok := b.PosFromByteOffset(2, ConvertPolicy{}); !ok || got != (Pos{Row: 0, GraphemeCol: 1}) {
		t.Fatalf("pos=%v ok=%v, want {0 1} true", got, ok)
	}
}

func TestBuffer_PosFromRuneOffset(t *testing.T) {
	// "👍🏽" is one cluster of two runes.
	b := New("a👍🏽\nb", Options{})
	policy := ConvertPolicy{}

	cases := []struct {
		off  int
		want Pos
		ok   bool
	}{
		{off: 0, want: Pos{Row: 0, GraphemeCol: 0}, ok: true},
		{off: 1, want: Pos{Row: 0, GraphemeCol: 1}, ok: true},
		{off: 2, ok: false},
		{off: 3, want: Pos{Row: 0, GraphemeCol: 2}, ok: true},
		{off: 4, want: Pos{Row: 1, GraphemeCol: 0}, ok: true},
		{off: 5, want: Pos{Row: 1, GraphemeCol: 1}, ok: true},
		{off: 6, ok: false},
	}
	for _, tc := range cases {
		got, ok := b.PosFromRuneOffset(tc.off, policy)
		if ok != tc.ok {
			t.Fatalf("off=%d: ok=%v, want %v", tc.off, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("off=%d: pos=%v, want %v", tc.off, got, tc.want)
		}
	}
}

func TestBuffer_OffsetFromPos(t *testing.T) {
	b := New("a👍🏽\nb", Options{})

	if got, ok := b.RuneOffsetFromPos(Pos{Row: 1, GraphemeCol: 1}, ConvertPolicy{}); !ok || got != 5 {
		t.Fatalf("rune offset=%d ok=%v, want 5 true", got, ok)
	}
	// 'a' + 8 bytes of emoji + '\n'.
	if got, ok := b.ByteOffsetFromPos(Pos{Row: 1, GraphemeCol: 0}, ConvertPolicy{}); !ok || got != 10 {
		t.Fatalf("byte offset=%d ok=%v, want 10 true", got, ok)
	}
	if _, ok := b.RuneOffsetFromPos(Pos{Row: 0, GraphemeCol: 9}, ConvertPolicy{ClampMode: OffsetError}); ok {
		t.Fatalf("expected out-of-range pos to be rejected")
	}
	if got, ok := b.RuneOffsetFromPos(Pos{Row: 0, GraphemeCol: 9}, ConvertPolicy{ClampMode: OffsetClamp}); !ok || got != 3 {
		t.Fatalf("clamped offset=%d ok=%v, want 3 true", got, ok)
	}
}

func TestBuffer_GapConversions(t *testing.T) {
	b := New("a👍🏽b", Options{})
	policy := ConvertPolicy{}

	left, ok := b.PosFromGap(Gap{RuneOffset: 2, Bias: GapBiasLeft}, policy)
	if !ok || left != (Pos{Row: 0, GraphemeCol: 1}) {
		t.Fatalf("left snap=%v ok=%v, want {0 1}", left, ok)
	}
	right, ok := b.PosFromGap(Gap{RuneOffset: 2, Bias: GapBiasRight}, policy)
	if !ok || right != (Pos{Row: 0, GraphemeCol: 2}) {
		t.Fatalf("right snap=%v ok=%v, want {0 2}", right, ok)
	}

	g, ok := b.GapFromPos(Pos{Row: 0, GraphemeCol: 2}, GapBiasRight)
	if !ok || g != (Gap{RuneOffset: 3, Bias: GapBiasRight}) {
		t.Fatalf("gap=%+v ok=%v", g, ok)
	}
	if _, ok := b.GapFromPos(Pos{}, GapBias(9)); ok {
		t.Fatalf("expected invalid bias to be rejected")
	}
	if _, ok := b.PosFromGap(Gap{RuneOffset: 0, Bias: GapBias(9)}, policy); ok {
		t.Fatalf("expected invalid bias to be rejected")
	}
}

func TestBuffer_OffsetConversions_RoundTripAtBoundaries(t *testing.T) {
	b := New("red, (blue:1.2)\n👍🏽 eyes", Options{})
	total := len([]rune(b.Text()))
	for off := 0; off <= total; off++ {
		pos, ok := b.PosFromRuneOffset(off, ConvertPolicy{})
		if !ok {
			continue
		}
		back, ok := b.RuneOffsetFromPos(pos, ConvertPolicy{})
		if !ok || back != off {
			t.Fatalf("off=%d -> %v -> %d (ok=%v)", off, pos, back, ok)
		}
	}
}

func TestBuffer_ConversionAPIs_InvalidClampMode(t *testing.T) {
	b := New("ab", Options{})
	bad := ConvertPolicy{ClampMode: OffsetClampMode(9)}
	if _, ok := b.PosFromRuneOffset(0, bad); ok {
		t.Fatalf("expected invalid clamp mode to be rejected")
	}
	if _, ok := b.RuneOffsetFromPos(Pos{}, bad); ok {
		t.Fatalf("expected invalid clamp mode to be rejected")
	}
}
