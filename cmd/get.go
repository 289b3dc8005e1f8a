package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/zckv/action-update-release/internal/ghapi"
)

var (
	getProject string
	getTag     string
	getAsset   string
	getOutput  string
	getToken   string
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Download a single release asset by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			out := getOutput
			if out == "" {
				out = filepath.Join(".", "downloads", getAsset)
			}

			client := newClient(getToken)
			rel, err := client.ReleaseByTag(ctx, getProject, getTag)
			if err != nil {
				return err
			}
			asset, err := rel.FindAsset(getAsset)
			if err != nil {
				return err
			}

			bar := pb.Full.Start64(asset.Size)
			err = ghapi.WriteFileAtomically(out, func(f *os.File) error {
				return client.DownloadAsset(ctx, asset, bar.NewProxyWriter(f))
			})
			bar.Finish()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Downloaded:", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&getProject, "project", "", "Project in '[OWNER]/[REPO]' form (required)")
	cmd.Flags().StringVar(&getTag, "tag", "", "Release tag (required)")
	cmd.Flags().StringVar(&getAsset, "asset", "", "Release asset filename (required)")
	cmd.Flags().StringVar(&getOutput, "output", "", "Output path (optional; defaults to ./downloads/<asset>)")
	cmd.Flags().StringVar(&getToken, "token", "", "Authentication token (optional for public releases)")

	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("tag")
	_ = cmd.MarkFlagRequired("asset")

	return cmd
}
