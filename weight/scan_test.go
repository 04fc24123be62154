package weight

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScan_TopLevelEntries(t *testing.T) {
	text := "1girl, (cowboy shot:1.2), (traditional media, retro artstyle, 1980s (style):1.15), red:0.9"

	want := []Segment{
		{Kind: SegmentTag, Start: 0, End: 5, Text: "1girl", Core: "1girl"},
		{
			Kind: SegmentGroup, Start: 7, End: 24, Text: "(cowboy shot:1.2)",
			Core: "cowboy shot", Weight: 1.2, HasWeight: true,
			Children: []Segment{
				{Kind: SegmentTag, Start: 8, End: 19, Text: "cowboy shot", Core: "cowboy shot"},
			},
		},
		{
			Kind: SegmentGroup, Start: 26, End: 81,
			Text:   "(traditional media, retro artstyle, 1980s (style):1.15)",
			Core:   "traditional media, retro artstyle, 1980s (style)",
			Weight: 1.15, HasWeight: true,
			Children: []Segment{
				{Kind: SegmentTag, Start: 27, End: 44, Text: "traditional media", Core: "traditional media"},
				{Kind: SegmentTag, Start: 46, End: 60, Text: "retro artstyle", Core: "retro artstyle"},
				{Kind: SegmentTag, Start: 62, End: 75, Text: "1980s (style)", Core: "1980s (style)"},
			},
		},
		{Kind: SegmentTag, Start: 83, End: 90, Text: "red:0.9", Core: "red", Weight: 0.9, HasWeight: true},
	}

	if diff := cmp.Diff(want, Scan(text)); diff != "" {
		t.Fatalf("Scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_SkipsEmptyEntriesAndToleratesStrayParens(t *testing.T) {
	got := Scan(" , a ,, b) , ")
	want := []Segment{
		{Kind: SegmentTag, Start: 3, End: 4, Text: "a", Core: "a"},
		{Kind: SegmentTag, Start: 8, End: 10, Text: "b)", Core: "b)"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Scan mismatch (-want +got):\n%s", diff)
	}

	if got := Scan(""); len(got) != 0 {
		t.Fatalf("Scan(\"\"): got %d segments, want 0", len(got))
	}
}

func TestEnclosingGroups_OutermostFirst(t *testing.T) {
	got := EnclosingGroups("(a, (b:1.2):1.1)", 5)
	want := []Group{
		{Start: 0, End: 16, Content: "a, (b:1.2)", Weight: 1.1},
		{Start: 4, End: 11, Content: "b", Weight: 1.2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("EnclosingGroups mismatch (-want +got):\n%s", diff)
	}
	if !got[0].HasMultipleTags() || got[1].HasMultipleTags() {
		t.Fatalf("HasMultipleTags: got (%v, %v), want (true, false)", got[0].HasMultipleTags(), got[1].HasMultipleTags())
	}
}

func TestEnclosingGroups_StopsAtUnmatchedParen(t *testing.T) {
	if got := EnclosingGroups("(a, (b:1.2", 6); len(got) != 0 {
		t.Fatalf("got %+v, want none", got)
	}
	if got := EnclosingGroups("((c:1.1)", 3); len(got) != 1 || got[0].Start != 1 {
		t.Fatalf("got %+v, want only the group at 1", got)
	}
}

func TestEnclosingGroups_IgnoresCaretOutside(t *testing.T) {
	if got := EnclosingGroups("(a:1.2), b", 9); len(got) != 0 {
		t.Fatalf("got %+v, want none", got)
	}
	if got := EnclosingGroups("(a:1.2)", 42); got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}

func TestSegmentKind_String(t *testing.T) {
	if SegmentTag.String() != "tag" || SegmentGroup.String() != "group" {
		t.Fatalf("unexpected kind names: %q, %q", SegmentTag, SegmentGroup)
	}
}
