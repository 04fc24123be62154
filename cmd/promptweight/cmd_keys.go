package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/promptweight/editor"
)

func newKeysCmd(a *app) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the editor key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			md := keysMarkdown(editor.DefaultKeyMap(), a.cfg.Weight.ShiftMultiplier)
			if plain {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
			if err != nil {
				return fmt.Errorf("create renderer: %w", err)
			}
			out, err := r.Render(md)
			if err != nil {
				return fmt.Errorf("render keys: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print markdown without rendering")
	return cmd
}

func keysMarkdown(km editor.KeyMap, shiftMultiplier float64) string {
	var sb strings.Builder
	sb.WriteString("# promptweight keys\n\n")
	sb.WriteString("| Keys | Action |\n|---|---|\n")
	row := func(b key.Binding) {
		fmt.Fprintf(&sb, "| `%s` | %s |\n", strings.Join(b.Keys(), "`, `"), b.Help().Desc)
	}
	for _, b := range []key.Binding{km.WeightUp, km.WeightDown, km.WeightUpFast, km.WeightDownFast} {
		row(b)
	}
	for _, b := range []key.Binding{
		km.WordLeft, km.WordRight, km.TagLeft, km.TagRight, km.Home, km.End, km.DocStart, km.DocEnd,
		km.Undo, km.Redo, km.Copy, km.Cut, km.Paste,
	} {
		row(b)
	}
	fmt.Fprintf(&sb, "\nFast variants move %g steps at once. In `edit`, `ctrl+s` saves and `esc` or `ctrl+q` quits.\n", shiftMultiplier)
	return sb.String()
}
