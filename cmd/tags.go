package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zckv/action-update-release/internal/ghapi"
	"github.com/zckv/action-update-release/internal/version"
)

var tagsProject string

func newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List release tags of a remote GitHub repository, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			tags, err := ghapi.ListTags(ctx, ghapi.RemoteURL(tagsProject))
			if err != nil {
				return err
			}
			version.SortDesc(tags)

			for _, t := range tags {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tagsProject, "project", "", "Project in '[OWNER]/[REPO]' form (required)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
