package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/promptweight/internal/config"
)

// app carries state shared by every subcommand after PersistentPreRunE.
type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "promptweight",
		Short: "Adjust (tag:weight) emphasis in image-generation prompts",
		Long: `promptweight edits comma-separated prompts whose tags carry
(tag:weight) emphasis. Weights move in fixed steps, are clamped to a
configured range and render without annotation at exactly 1.

Configuration is read from --config (or $PROMPTWEIGHT_CONFIG) and
PROMPTWEIGHT_* environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if path == "" {
				path = os.Getenv("PROMPTWEIGHT_CONFIG")
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.configPath = path

			// The interactive editor owns the terminal and logs to a file.
			logger, err := newLogger(cfg.Logging, a.verbose, cmd.Name() == "edit")
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(
		newAdjustCmd(a),
		newScanCmd(a),
		newEditCmd(a),
		newKeysCmd(a),
		newVersionCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
