// Package weight implements the weighted-tag editor for comma-separated
// prompts.
//
// Prompts are lists of tags separated by ',' where a tag or a parenthesized
// group of tags may carry an emphasis weight: (red hair:1.2) or
// (cat, dog:0.8). Adjust computes the text that results from nudging the
// weight of the selection, the enclosing group, or the word at the caret.
//
// Offsets are 0-based rune offsets unless a function says otherwise.
// Selections are half-open: [Start, End).
package weight
