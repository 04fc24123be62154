package weight

import (
	"math"
	"strings"
)

// Selection is a half-open rune range. Start == End is a caret.
type Selection struct {
	Start, End int
}

func Caret(offset int) Selection { return Selection{Start: offset, End: offset} }

func (s Selection) IsEmpty() bool { return s.Start == s.End }

// Edit replaces [Start, End) of the input text with Replacement.
type Edit struct {
	Start, End  int
	Replacement string
}

// Result is the outcome of Adjust.
type Result struct {
	Text string
	// Caret is where the host should place the caret: the start of the
	// affected span, or the selection start when nothing changed.
	Caret   int
	Changed bool
	// Edit is the applied replacement; zero when Changed is false.
	Edit Edit
}

// Adjust changes the weight of the target described by sel by delta.
//
// A selection containing ',' is weighted as one group. Any other selection
// is weighted as a single tag. A caret prefers the outermost enclosing
// weighted group that holds several tags, then the innermost enclosing
// weighted group, then the word (or tag, see Config.WholeTag) under it.
//
// Adjust never fails. When no target can be adjusted, or the rendered weight
// would not change, the text is returned unchanged and Changed is false.
func Adjust(text string, sel Selection, delta float64, cfg Config) Result {
	cfg = cfg.Normalize()
	noop := Result{Text: text, Caret: sel.Start}

	rs := []rune(text)
	if sel.Start < 0 || sel.End < sel.Start || sel.End > len(rs) {
		return noop
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return noop
	}

	var (
		edit Edit
		ok   bool
	)
	switch {
	case sel.IsEmpty():
		edit, ok = adjustAtCaret(rs, sel.Start, delta, cfg)
	case containsRune(rs[sel.Start:sel.End], ','):
		edit, ok = adjustGroupRange(rs, sel, delta, cfg)
	default:
		edit, ok = adjustTagRange(rs, sel, delta, cfg)
	}
	if !ok {
		return noop
	}

	var sb strings.Builder
	sb.WriteString(string(rs[:edit.Start]))
	sb.WriteString(edit.Replacement)
	sb.WriteString(string(rs[edit.End:]))
	out := sb.String()
	if out == text {
		return noop
	}
	return Result{Text: out, Caret: edit.Start, Changed: true, Edit: edit}
}

func adjustGroupRange(rs []rune, sel Selection, delta float64, cfg Config) (Edit, bool) {
	lead, core, trail := trimSpaceRunes(string(rs[sel.Start:sel.End]))

	content, current := core, 1.0
	if inner, w, ok := parseGroupCandidate(core); ok {
		content, current = inner, w
	}
	next, ok := step(current, delta, cfg)
	if !ok {
		return Edit{}, false
	}
	return Edit{
		Start:       sel.Start,
		End:         sel.End,
		Replacement: lead + Render(content, next, cfg.Precision) + trail,
	}, true
}

func adjustTagRange(rs []rune, sel Selection, delta float64, cfg Config) (Edit, bool) {
	lead, raw, trail := trimSpaceRunes(string(rs[sel.Start:sel.End]))
	tag := ParseTag(raw)
	if tag.Core == "" {
		return Edit{}, false
	}
	next, ok := step(tag.Effective(), delta, cfg)
	if !ok {
		return Edit{}, false
	}
	return Edit{
		Start:       sel.Start,
		End:         sel.End,
		Replacement: lead + Render(tag.Core, next, cfg.Precision) + trail,
	}, true
}

func adjustAtCaret(rs []rune, caret int, delta float64, cfg Config) (Edit, bool) {
	if g, found := pickGroup(enclosingGroups(rs, caret)); found {
		next, ok := step(g.Weight, delta, cfg)
		if !ok {
			return Edit{}, false
		}
		return Edit{
			Start:       g.Start,
			End:         g.End,
			Replacement: Render(g.Content, next, cfg.Precision),
		}, true
	}

	start, end := tokenBounds(rs, caret, cfg.WholeTag)
	tag := ParseTag(string(rs[start:end]))
	if tag.Core == "" {
		return Edit{}, false
	}
	next, ok := step(tag.Effective(), delta, cfg)
	if !ok {
		return Edit{}, false
	}
	return Edit{
		Start:       start,
		End:         end,
		Replacement: Render(tag.Core, next, cfg.Precision),
	}, true
}

// pickGroup chooses the outermost group holding several tags, else the
// innermost group.
func pickGroup(groups []Group) (Group, bool) {
	if len(groups) == 0 {
		return Group{}, false
	}
	for _, g := range groups {
		if g.HasMultipleTags() {
			return g, true
		}
	}
	return groups[len(groups)-1], true
}

func containsRune(rs []rune, r rune) bool {
	for _, c := range rs {
		if c == r {
			return true
		}
	}
	return false
}
