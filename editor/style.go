package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Emphasis and Deemphasis style entries weighted above and below 1
	// when the editor uses a WeightHighlighter.
	Emphasis   lipgloss.Style
	Deemphasis lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        dim,
		LineNum:       dim,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Emphasis:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Deemphasis:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true),
	}
}
