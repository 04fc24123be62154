package editor

import (
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/promptweight/internal/grapheme"
	"github.com/iw2rmb/promptweight/weight"
)

// WeightHighlighter colours top-level tags and groups whose weight differs
// from 1: Emphasis above, Deemphasis below.
type WeightHighlighter struct {
	Emphasis   lipgloss.Style
	Deemphasis lipgloss.Style
	// WeightSource supplies the precision that decides whether a weight
	// rounds to 1. It is read on every line; nil means weight.DefaultConfig.
	WeightSource func() weight.Config
}

// NewWeightHighlighter uses the emphasis styles of DefaultStyle.
func NewWeightHighlighter() WeightHighlighter {
	return DefaultStyle().WeightHighlighter(nil)
}

// WeightHighlighter returns a highlighter using s's emphasis styles and the
// precision of source.
func (s Style) WeightHighlighter(source func() weight.Config) WeightHighlighter {
	return WeightHighlighter{
		Emphasis:     s.Emphasis,
		Deemphasis:   s.Deemphasis,
		WeightSource: source,
	}
}

func (h WeightHighlighter) precision() int {
	if h.WeightSource == nil {
		return weight.DefaultPrecision
	}
	return h.WeightSource().Normalize().Precision
}

func (h WeightHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	segs := weight.Scan(ctx.Text)
	if len(segs) == 0 {
		return nil, nil
	}
	cols := runeToGraphemeCols(ctx.Text)
	precision := h.precision()

	var spans []HighlightSpan
	for _, seg := range segs {
		w := weight.Round(seg.Effective(), precision)
		var st lipgloss.Style
		switch {
		case w > 1:
			st = h.Emphasis
		case w < 1:
			st = h.Deemphasis
		default:
			continue
		}
		spans = append(spans, HighlightSpan{
			StartGraphemeCol: cols[seg.Start],
			EndGraphemeCol:   cols[seg.End],
			Style:            st,
		})
	}
	return spans, nil
}

// runeToGraphemeCols maps every rune offset of text (including the end) to
// the index of the cluster containing it.
func runeToGraphemeCols(text string) []int {
	out := make([]int, 0, utf8.RuneCountInString(text)+1)
	clusters := grapheme.Split(text)
	for col, c := range clusters {
		for range utf8.RuneCountInString(c) {
			out = append(out, col)
		}
	}
	return append(out, len(clusters))
}
