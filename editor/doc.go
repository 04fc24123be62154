// Package editor provides a Bubble Tea prompt editor component backed by the
// buffer package.
//
// Besides ordinary editing, the editor binds weight adjustment to
// modifier+arrow keys: the tag, selection or enclosing group at the caret is
// re-weighted through the weight package and applied as one undoable change.
// Hosts observe edits through OnChange and may colour weighted entries with
// WeightHighlighter.
package editor
