package weight

import (
	"strings"
	"unicode"
)

// Tag is a single prompt term with an optional weight.
type Tag struct {
	Core      string
	Weight    float64
	HasWeight bool

	// Paren is set when the weight was written as (core:w) rather than the
	// legacy core:w form.
	Paren bool
}

// Effective returns the weight used for arithmetic: Weight, or 1 when the
// tag carries none.
func (t Tag) Effective() float64 {
	if !t.HasWeight {
		return 1
	}
	return t.Weight
}

// Render returns the canonical text of t. Legacy core:w input is always
// written back as (core:w).
func (t Tag) Render(precision int) string {
	return Render(t.Core, t.Effective(), precision)
}

// ParseTag parses raw as one of, in order:
//
//	(core:w)   core without ':', '(' or ')'
//	core:w     core without ':', '(', ')' or ','
//	core       anything else, no weight
//
// Surrounding whitespace is ignored.
func ParseTag(raw string) Tag {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Tag{}
	}

	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		if core, w, ok := splitWeighted(s[1:len(s)-1], ":()"); ok {
			return Tag{Core: core, Weight: w, HasWeight: true, Paren: true}
		}
	}
	if core, w, ok := splitWeighted(s, ":(),"); ok {
		return Tag{Core: core, Weight: w, HasWeight: true}
	}
	return Tag{Core: s}
}

// splitWeighted splits s at its first ':' into a core free of forbidden
// runes and a decimal weight.
func splitWeighted(s, forbidden string) (string, float64, bool) {
	colon := strings.IndexByte(s, ':')
	if colon <= 0 {
		return "", 0, false
	}
	core := s[:colon]
	if strings.ContainsAny(core, forbidden) {
		return "", 0, false
	}
	w, ok := parseDecimal(strings.TrimLeftFunc(s[colon+1:], unicode.IsSpace))
	if !ok {
		return "", 0, false
	}
	return strings.TrimSpace(core), w, true
}

// parseGroupCandidate matches s against (inner:w) where inner is arbitrary
// text. The last ':' wins and whitespace before it is dropped from inner.
func parseGroupCandidate(s string) (string, float64, bool) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return "", 0, false
	}
	body := s[1 : len(s)-1]
	colon := strings.LastIndexByte(body, ':')
	if colon < 0 {
		return "", 0, false
	}
	w, ok := parseDecimal(strings.TrimLeftFunc(body[colon+1:], unicode.IsSpace))
	if !ok {
		return "", 0, false
	}
	return strings.TrimRightFunc(body[:colon], unicode.IsSpace), w, true
}
