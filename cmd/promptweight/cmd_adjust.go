package main

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/promptweight/weight"
)

type adjustOptions struct {
	text  string
	start int
	end   int
	delta float64
	up    bool
	down  bool
	shift bool
	utf16 bool
}

type adjustOutput struct {
	Text    string `json:"text"`
	Caret   int    `json:"caret"`
	Changed bool   `json:"changed"`
}

func newAdjustCmd(a *app) *cobra.Command {
	var opts adjustOptions
	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Adjust the weight at a caret or selection and print the result as JSON",
		Long: `Runs one weight adjustment. --start and --end are offsets in code points
(or UTF-16 code units with --utf16); equal offsets mean a caret. With
--end omitted the selection is a caret at --start. --text - reads stdin.

Example:
  promptweight adjust --text "(red:1.1) hair, blue eyes" --start 3 --up`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("end") {
				opts.end = opts.start
			}
			if opts.text == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				opts.text = strings.TrimSuffix(string(data), "\n")
			}
			return runAdjust(a, cmd, opts, cmd.Flags().Changed("delta"))
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.text, "text", "t", "", "prompt text, or - for stdin")
	f.IntVarP(&opts.start, "start", "s", 0, "selection start offset")
	f.IntVarP(&opts.end, "end", "e", 0, "selection end offset (defaults to --start)")
	f.Float64VarP(&opts.delta, "delta", "d", 0, "explicit weight delta")
	f.BoolVar(&opts.up, "up", false, "increase by one step")
	f.BoolVar(&opts.down, "down", false, "decrease by one step")
	f.BoolVar(&opts.shift, "shift", false, "multiply the step by the shift multiplier")
	f.BoolVar(&opts.utf16, "utf16", false, "interpret offsets as UTF-16 code units")
	cmd.MarkFlagsMutuallyExclusive("up", "down", "delta")
	return cmd
}

func runAdjust(a *app, cmd *cobra.Command, opts adjustOptions, explicitDelta bool) error {
	cfg := a.cfg.Weight.Weight()

	delta := opts.delta
	switch {
	case explicitDelta:
	case opts.up:
		delta = cfg.Delta(weight.Up, opts.shift)
	case opts.down:
		delta = cfg.Delta(weight.Down, opts.shift)
	default:
		return errors.New("one of --up, --down or --delta is required")
	}

	var res weight.Result
	if opts.utf16 {
		res = weight.AdjustUTF16(opts.text, opts.start, opts.end, delta, cfg)
	} else {
		res = weight.Adjust(opts.text, weight.Selection{Start: opts.start, End: opts.end}, delta, cfg)
	}
	a.logger.Debug("adjusted",
		zap.Int("start", opts.start),
		zap.Int("end", opts.end),
		zap.Float64("delta", delta),
		zap.Bool("changed", res.Changed))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	return enc.Encode(adjustOutput{Text: res.Text, Caret: res.Caret, Changed: res.Changed})
}
