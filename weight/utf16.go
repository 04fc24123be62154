package weight

import "unicode/utf16"

// RuneOffsetFromUTF16 converts a UTF-16 code-unit offset into text to a rune
// offset. Offsets inside a surrogate pair resolve to the rune they split;
// offsets past the end clamp to the rune count.
func RuneOffsetFromUTF16(text string, off int) int {
	if off <= 0 {
		return 0
	}
	units, runes := 0, 0
	for _, r := range text {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		if units+n > off {
			return runes
		}
		units += n
		runes++
	}
	return runes
}

// UTF16OffsetFromRune converts a rune offset into text to a UTF-16 code-unit
// offset, clamping past the end.
func UTF16OffsetFromRune(text string, off int) int {
	if off <= 0 {
		return 0
	}
	units, runes := 0, 0
	for _, r := range text {
		if runes == off {
			break
		}
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		units += n
		runes++
	}
	return units
}

// UTF16Len returns the length of text in UTF-16 code units.
func UTF16Len(text string) int {
	n := 0
	for _, r := range text {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// AdjustUTF16 is Adjust for hosts that address text in UTF-16 code units,
// such as browser text areas. Offsets in the result are UTF-16 as well.
// A selection reaching past the end of text is a no-op, as in Adjust.
func AdjustUTF16(text string, start, end int, delta float64, cfg Config) Result {
	if start < 0 || end < start || end > UTF16Len(text) {
		return Result{Text: text, Caret: start}
	}
	sel := Selection{
		Start: RuneOffsetFromUTF16(text, start),
		End:   RuneOffsetFromUTF16(text, end),
	}
	res := Adjust(text, sel, delta, cfg)
	if !res.Changed {
		res.Caret = start
		return res
	}
	res.Caret = UTF16OffsetFromRune(res.Text, res.Caret)
	res.Edit.Start = UTF16OffsetFromRune(text, res.Edit.Start)
	res.Edit.End = UTF16OffsetFromRune(text, res.Edit.End)
	return res
}
