package editor

import "github.com/iw2rmb/promptweight/internal/grapheme"

type wrappedSegment struct {
	StartGraphemeCol int
	EndGraphemeCol   int
	Cells            int
}

// wrapLine splits one logical line into visual segments no wider than width
// cells. A single cluster wider than width gets a segment of its own.
func wrapLine(clusters []string, mode WrapMode, width, tabWidth int) []wrappedSegment {
	widths := make([]int, len(clusters))
	total := 0
	for i, c := range clusters {
		widths[i] = grapheme.Width(c, total, tabWidth)
		total += widths[i]
	}
	if width <= 0 || mode == WrapNone || total <= width {
		return []wrappedSegment{{EndGraphemeCol: len(clusters), Cells: total}}
	}

	segs := make([]wrappedSegment, 0, 1+total/width)
	for start := 0; start < len(clusters); {
		used, end := 0, start
		for end < len(clusters) {
			if used > 0 && used+widths[end] > width {
				break
			}
			used += widths[end]
			end++
		}
		if mode == WrapWord && end < len(clusters) {
			if br := lastWrapBreak(clusters, start, end); br > start {
				end = br
			}
		}

		cells := 0
		for _, w := range widths[start:end] {
			cells += w
		}
		segs = append(segs, wrappedSegment{StartGraphemeCol: start, EndGraphemeCol: end, Cells: cells})
		start = end
	}
	return segs
}

// lastWrapBreak returns the column after the last gap in [start, end), or -1.
func lastWrapBreak(clusters []string, start, end int) int {
	for j := end; j > start; j-- {
		if c := clusters[j-1]; c == "," || grapheme.IsSpace(c) {
			return j
		}
	}
	return -1
}
