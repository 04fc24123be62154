// Package buffer implements the pure document model behind the prompt
// editor: text, cursor, selection, history and change records.
//
// Positions are 0-based (Row, GraphemeCol): columns count grapheme clusters,
// so a cursor never lands inside a cluster. Ranges are half-open in document
// order: [Start, End). Rune offsets (Unicode code points across the whole
// document, '\n' counting as one) bridge to offset-based tools such as the
// weight package.
package buffer
