package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/promptweight/weight"
)

type segmentOutput struct {
	Kind     string          `json:"kind"`
	Start    int             `json:"start"`
	End      int             `json:"end"`
	Text     string          `json:"text"`
	Core     string          `json:"core"`
	Weight   *float64        `json:"weight,omitempty"`
	Children []segmentOutput `json:"children,omitempty"`
}

func newScanCmd(a *app) *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the tags and groups of a prompt as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			segs := toSegmentOutput(weight.Scan(text))
			a.logger.Debug("scanned")

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(segs)
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "prompt text")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func toSegmentOutput(segs []weight.Segment) []segmentOutput {
	out := make([]segmentOutput, 0, len(segs))
	for _, s := range segs {
		o := segmentOutput{
			Kind:     s.Kind.String(),
			Start:    s.Start,
			End:      s.End,
			Text:     s.Text,
			Core:     s.Core,
		}
		if s.HasWeight {
			w := s.Weight
			o.Weight = &w
		}
		if len(s.Children) > 0 {
			o.Children = toSegmentOutput(s.Children)
		}
		out = append(out, o)
	}
	return out
}
