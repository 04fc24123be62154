package buffer

import "testing"

func TestBuffer_Apply_SequentialEditsAreOneUndoStep(t *testing.T) {
	b := New("red, blue", Options{})
	b.Apply(
		TextEdit{Range: Range{Start: Pos{Row: 0, GraphemeCol: 0}, End: Pos{Row: 0, GraphemeCol: 3}}, Text: "(red:1.2)"},
		TextEdit{Range: Range{Start: Pos{Row: 0, GraphemeCol: 11}, End: Pos{Row: 0, GraphemeCol: 15}}, Text: "green"},
	)
	if got, want := b.Text(), "(red:1.2), green"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 16}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	ch, ok := b.LastChange()
	if !ok || len(ch.AppliedEdits) != 2 {
		t.Fatalf("expected 2 applied edits, got %+v", ch)
	}

	b.Undo()
	if got, want := b.Text(), "red, blue"; got != want {
		t.Fatalf("after undo: text=%q, want %q", got, want)
	}
}

func TestBuffer_Apply_NoEffectiveEdits(t *testing.T) {
	b := New("abc", Options{})
	v := b.Version()
	b.Apply()
	b.Apply(TextEdit{Range: Range{Start: Pos{Row: 0, GraphemeCol: 0}, End: Pos{Row: 0, GraphemeCol: 1}}, Text: "a"})
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
	if b.CanUndo() {
		t.Fatalf("expected no history entry")
	}
}
