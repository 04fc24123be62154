package weight

import "testing"

func TestUTF16Offsets(t *testing.T) {
	text := "😀 red"
	cases := []struct {
		utf16, runes int
	}{
		{utf16: 0, runes: 0},
		{utf16: 1, runes: 0},
		{utf16: 2, runes: 1},
		{utf16: 3, runes: 2},
		{utf16: 6, runes: 5},
		{utf16: 99, runes: 5},
	}
	for _, tc := range cases {
		if got := RuneOffsetFromUTF16(text, tc.utf16); got != tc.runes {
			t.Fatalf("RuneOffsetFromUTF16(%d): got %d, want %d", tc.utf16, got, tc.runes)
		}
	}

	if got := UTF16OffsetFromRune(text, 2); got != 3 {
		t.Fatalf("UTF16OffsetFromRune(2): got %d, want 3", got)
	}
	if got := UTF16OffsetFromRune(text, 99); got != 6 {
		t.Fatalf("UTF16OffsetFromRune(99): got %d, want 6", got)
	}
}

func TestAdjustUTF16(t *testing.T) {
	got := AdjustUTF16("😀 red", 4, 4, 0.1, Config{})
	if got.Text != "😀 (red:1.1)" {
		t.Fatalf("text=%q", got.Text)
	}
	if got.Caret != 3 {
		t.Fatalf("caret=%d, want 3", got.Caret)
	}
	if got.Edit.Start != 3 || got.Edit.End != 6 {
		t.Fatalf("edit span=[%d,%d), want [3,6)", got.Edit.Start, got.Edit.End)
	}

	noop := AdjustUTF16("😀 ,", 3, 3, 0.1, Config{})
	if noop.Changed || noop.Caret != 3 {
		t.Fatalf("noop: got %+v", noop)
	}

	if got := UTF16Len("😀 red"); got != 6 {
		t.Fatalf("UTF16Len: got %d, want 6", got)
	}
}

func TestAdjustUTF16_OutOfRangeIsNoOp(t *testing.T) {
	cases := []struct {
		text       string
		start, end int
	}{
		{text: "red", start: 0, end: 9},
		{text: "red", start: 2, end: 99},
		{text: "😀 red", start: 6, end: 7},
		{text: "red", start: -1, end: 1},
		{text: "red", start: 2, end: 1},
	}
	for _, tc := range cases {
		got := AdjustUTF16(tc.text, tc.start, tc.end, 0.1, Config{})
		if got.Changed || got.Text != tc.text || got.Caret != tc.start {
			t.Fatalf("AdjustUTF16(%q, %d, %d): got %+v", tc.text, tc.start, tc.end, got)
		}
	}

	if got := AdjustUTF16("😀 red", 3, 6, 0.1, Config{}); got.Text != "😀 (red:1.1)" {
		t.Fatalf("selection ending at text end: got %q", got.Text)
	}
}
