package grapheme

import "testing"

const family = "\U0001F468\u200D\U0001F469\u200D\U0001F467"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if Split("") != nil || Count("") != 0 {
		t.Fatalf("expected empty split and zero count for empty text")
	}
	if got := Join(got); got != text {
		t.Fatalf("join=%q, want %q", got, text)
	}
}

func TestIsSpace(t *testing.T) {
	for _, c := range []string{" ", "\t", "\u00a0"} {
		if !IsSpace(c) {
			t.Fatalf("%q should be space", c)
		}
	}
	for _, c := range []string{"", "a", ","} {
		if IsSpace(c) {
			t.Fatalf("%q should not be space", c)
		}
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		cluster string
		col     int
		want    int
	}{
		{cluster: "a", want: 1},
		{cluster: "é", want: 1},
		{cluster: "界", want: 2},
		{cluster: "🙂", want: 2},
		{cluster: "\t", col: 0, want: 4},
		{cluster: "\t", col: 1, want: 3},
		{cluster: "\t", col: 6, want: 2},
	}
	for _, tc := range cases {
		if got := Width(tc.cluster, tc.col, 4); got != tc.want {
			t.Fatalf("Width(%q, %d)=%d, want %d", tc.cluster, tc.col, got, tc.want)
		}
	}
}
