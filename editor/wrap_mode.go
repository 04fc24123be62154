package editor

// WrapMode controls how long logical lines are displayed.
//
// WrapNone renders one logical line per visual row and lets the viewport clip
// it. WrapWord breaks after the last space or comma that fits, falling back to
// WrapGrapheme for runs without one.
type WrapMode int

const (
	WrapWord WrapMode = iota
	WrapGrapheme
	WrapNone
)
