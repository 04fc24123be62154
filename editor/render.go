package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/promptweight/buffer"
	"github.com/iw2rmb/promptweight/internal/grapheme"
)

// visualRow is one rendered row: a wrapped segment of a logical line.
type visualRow struct {
	row   int
	seg   wrappedSegment
	first bool
	last  bool
}

func layoutRows(lines [][]string, mode WrapMode, width, tabWidth int) []visualRow {
	rows := make([]visualRow, 0, len(lines))
	for row, line := range lines {
		segs := wrapLine(line, mode, width, tabWidth)
		for i, seg := range segs {
			rows = append(rows, visualRow{row: row, seg: seg, first: i == 0, last: i == len(segs)-1})
		}
	}
	return rows
}

func cursorVisualRow(rows []visualRow, cur buffer.Pos) int {
	for i, vr := range rows {
		if vr.row != cur.Row {
			continue
		}
		if cur.GraphemeCol < vr.seg.EndGraphemeCol || vr.last {
			return i
		}
	}
	return 0
}

func (m *Model) gutterWidth(lineCount int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return len(strconv.Itoa(lineCount)) + 1
}

func (m *Model) contentWidth(lineCount int) int {
	if m.viewport.Width <= 0 {
		return 0
	}
	return max(m.viewport.Width-m.viewport.Style.GetHorizontalFrameSize()-m.gutterWidth(lineCount), 1)
}

func (m *Model) renderContent() string {
	lines := make([][]string, m.buf.LineCount())
	for row := range lines {
		lines[row] = grapheme.Split(m.buf.Line(row))
	}
	m.rows = layoutRows(lines, m.cfg.WrapMode, m.contentWidth(len(lines)), m.cfg.TabWidth)

	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	highlights := m.visibleHighlights(lines, cursor)
	digits := m.gutterWidth(len(lines)) - 1

	out := make([]string, 0, len(m.rows))
	for _, vr := range m.rows {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && vr.row == cursor.Row && vr.first {
				numStyle = m.cfg.Style.LineNumActive
			}
			num := fmt.Sprintf("%*s", digits, "")
			if vr.first {
				num = fmt.Sprintf("%*d", digits, vr.row+1)
			}
			sb.WriteString(numStyle.Render(num))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderRow(lines[vr.row], vr, cursor, sel, selOK, highlights[vr.row]))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// visibleHighlights runs the highlighter once per logical line that has a
// row inside the viewport.
func (m *Model) visibleHighlights(lines [][]string, cursor buffer.Pos) [][]HighlightSpan {
	out := make([][]HighlightSpan, len(lines))
	h := m.visibleRowCount()
	if m.cfg.Highlighter == nil || h <= 0 {
		return out
	}

	start := clampInt(m.viewport.YOffset, 0, len(m.rows))
	end := min(start+h, len(m.rows))
	done := make([]bool, len(lines))
	for _, vr := range m.rows[start:end] {
		if done[vr.row] {
			continue
		}
		done[vr.row] = true

		ctx := LineContext{Row: vr.row, Text: grapheme.Join(lines[vr.row]), CursorGraphemeCol: -1}
		if cursor.Row == vr.row {
			ctx.HasCursor = true
			ctx.CursorGraphemeCol = cursor.GraphemeCol
		}
		spans, err := m.cfg.Highlighter.HighlightLine(ctx)
		if err != nil {
			continue
		}
		out[vr.row] = normalizeHighlightSpans(spans, len(lines[vr.row]))
	}
	return out
}

func (m *Model) renderRow(line []string, vr visualRow, cursor buffer.Pos, sel buffer.Range, selOK bool, spans []HighlightSpan) string {
	st := m.cfg.Style
	hasCursor := m.focused && cursor.Row == vr.row
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, vr.row, len(line))

	cell := 0
	for _, c := range line[:vr.seg.StartGraphemeCol] {
		cell += grapheme.Width(c, cell, m.cfg.TabWidth)
	}

	var sb strings.Builder
	for col := vr.seg.StartGraphemeCol; col < vr.seg.EndGraphemeCol; col++ {
		text := line[col]
		w := grapheme.Width(text, cell, m.cfg.TabWidth)
		cell += w
		if text == "\t" {
			text = strings.Repeat(" ", w)
		}

		style := st.Text
		switch {
		case hasCursor && col == cursor.GraphemeCol:
			style = st.Cursor
		case hasSel && col >= selStart && col < selEnd:
			style = st.Selection
		default:
			if hs, ok := highlightAt(spans, col); ok {
				style = hs.Inherit(st.Text)
			}
		}
		sb.WriteString(style.Render(text))
	}

	// Cursor at EOL is drawn as a one-cell placeholder.
	if hasCursor && vr.last && cursor.GraphemeCol >= len(line) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.GraphemeCol
	}
	if row == sel.End.Row {
		end = sel.End.GraphemeCol
	}
	return start, end, start < end
}
