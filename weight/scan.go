package weight

import (
	"strings"
	"unicode"
)

// Group is a parenthesized span whose inner text ends in :<number>.
type Group struct {
	// Start is the offset of '(' and End the offset just past ')'.
	Start, End int
	// Content is the text between '(' and the last ':'.
	Content string
	Weight  float64
}

// HasMultipleTags reports whether the group content contains a separator.
func (g Group) HasMultipleTags() bool {
	return strings.ContainsRune(g.Content, ',')
}

// matchParens returns, for each '(' in rs, the offset of its matching ')';
// all other entries are -1.
func matchParens(rs []rune) []int {
	match := make([]int, len(rs))
	stack := make([]int, 0, 8)
	for i, r := range rs {
		match[i] = -1
		switch r {
		case '(':
			stack = append(stack, i)
		case ')':
			if len(stack) == 0 {
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			match[open] = i
		}
	}
	return match
}

// EnclosingGroups returns the weighted groups whose span contains caret,
// outermost first. A caret touching '(' or just past ')' counts as inside.
//
// Scanning proceeds leftwards from caret and stops at the first '(' that has
// no matching ')'.
func EnclosingGroups(text string, caret int) []Group {
	return enclosingGroups([]rune(text), caret)
}

func enclosingGroups(rs []rune, caret int) []Group {
	if caret < 0 || caret > len(rs) || len(rs) == 0 {
		return nil
	}
	match := matchParens(rs)

	var innermostFirst []Group
	for i := min(caret, len(rs)-1); i >= 0; i-- {
		if rs[i] != '(' {
			continue
		}
		closeAt := match[i]
		if closeAt < 0 {
			break
		}
		end := closeAt + 1
		if end < caret {
			continue
		}
		inner := string(rs[i+1 : closeAt])
		colon := strings.LastIndexByte(inner, ':')
		if colon < 0 {
			continue
		}
		w, ok := parseDecimal(strings.TrimSpace(inner[colon+1:]))
		if !ok {
			continue
		}
		innermostFirst = append(innermostFirst, Group{
			Start:   i,
			End:     end,
			Content: inner[:colon],
			Weight:  w,
		})
	}

	out := make([]Group, 0, len(innermostFirst))
	for i := len(innermostFirst) - 1; i >= 0; i-- {
		out = append(out, innermostFirst[i])
	}
	return out
}

// tokenBounds returns the trimmed token around offset. Tokens end at ',' and,
// unless wholeTag is set, at whitespace.
func tokenBounds(rs []rune, offset int, wholeTag bool) (start, end int) {
	stop := func(r rune) bool {
		if r == ',' {
			return true
		}
		return !wholeTag && unicode.IsSpace(r)
	}

	left := offset
	for left > 0 && !stop(rs[left-1]) {
		left--
	}
	right := offset
	for right < len(rs) && !stop(rs[right]) {
		right++
	}
	for left < right && unicode.IsSpace(rs[left]) {
		left++
	}
	for right > left && unicode.IsSpace(rs[right-1]) {
		right--
	}
	return left, right
}

type SegmentKind uint8

const (
	SegmentTag SegmentKind = iota
	SegmentGroup
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentTag:
		return "tag"
	case SegmentGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Segment is one comma-delimited entry of a prompt.
type Segment struct {
	Kind SegmentKind
	// Start and End delimit the trimmed entry, half-open.
	Start, End int
	Text       string

	// Core is the tag core, or the group content for SegmentGroup.
	Core      string
	Weight    float64
	HasWeight bool

	// Children holds the entries of a group's content, with offsets in the
	// scanned text.
	Children []Segment
}

// Effective returns Weight, or 1 when the segment carries none.
func (s Segment) Effective() float64 {
	if !s.HasWeight {
		return 1
	}
	return s.Weight
}

// Scan splits text into its top-level entries. Commas nested inside
// parentheses do not split; a parenthesized entry ending in :<number> is a
// group and its content is scanned recursively. Empty entries are skipped.
func Scan(text string) []Segment {
	rs := []rune(text)
	return scanRunes(rs, 0, len(rs), matchParens(rs))
}

func scanRunes(rs []rune, from, to int, match []int) []Segment {
	var out []Segment
	depth := 0
	start := from
	flush := func(end int) {
		s, e := start, end
		for s < e && unicode.IsSpace(rs[s]) {
			s++
		}
		for e > s && unicode.IsSpace(rs[e-1]) {
			e--
		}
		if s == e {
			return
		}
		out = append(out, segmentAt(rs, s, e, match))
	}

	for i := from; i < to; i++ {
		switch rs[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(to)
	return out
}

func segmentAt(rs []rune, start, end int, match []int) Segment {
	text := string(rs[start:end])
	if rs[start] == '(' && match[start] == end-1 {
		inner := rs[start+1 : end-1]
		colon := -1
		for i := len(inner) - 1; i >= 0; i-- {
			if inner[i] == ':' {
				colon = i
				break
			}
		}
		if colon >= 0 {
			if w, ok := parseDecimal(strings.TrimSpace(string(inner[colon+1:]))); ok {
				contentStart := start + 1
				contentEnd := contentStart + colon
				return Segment{
					Kind:      SegmentGroup,
					Start:     start,
					End:       end,
					Text:      text,
					Core:      string(rs[contentStart:contentEnd]),
					Weight:    w,
					HasWeight: true,
					Children:  scanRunes(rs, contentStart, contentEnd, match),
				}
			}
		}
	}

	tag := ParseTag(text)
	return Segment{
		Kind:      SegmentTag,
		Start:     start,
		End:       end,
		Text:      text,
		Core:      tag.Core,
		Weight:    tag.Weight,
		HasWeight: tag.HasWeight,
	}
}
