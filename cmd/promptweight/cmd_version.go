package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/promptweight"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), promptweight.ReadBuildInfo())
			return err
		},
	}
}
