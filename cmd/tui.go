package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zckv/action-update-release/tui"
)

func newTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive release synchronizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return tui.Run()
		},
	}
}
