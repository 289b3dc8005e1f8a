package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of action-update-release",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("action-update-release ~ 0.1.0")
	},
}
