package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zckv/action-update-release/config"
	"github.com/zckv/action-update-release/internal/ghapi"
	"github.com/zckv/action-update-release/internal/logger"
	"github.com/zckv/action-update-release/internal/syncer"
)

var (
	rootTag     string
	rootFiles   []string
	rootToken   string
	rootProject string
)

var rootCmd = &cobra.Command{
	Use:   "action-update-release",
	Short: "Synchronize local files as assets of an existing GitHub release",
	Long:  `action-update-release uploads the given files to the release identified
by --project and --tag. An existing asset with the same file name is
deleted first, so reruns replace rather than duplicate.`,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Flags parsed fine; failures past this point are not usage errors.
		cmd.SilenceUsage = true

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
		defer cancel()

		var bar *pb.ProgressBar
		ev := syncer.Events{
			Resolved: func(total int) {
				bar = pb.StartNew(total)
			},
			Synced: func(r syncer.Result) {
				bar.Increment()
			},
		}

		results, err := syncer.Sync(ctx, newClient(rootToken), syncer.Options{
			Project: rootProject,
			Tag:     rootTag,
			Paths:   rootFiles,
		}, ev)
		if bar != nil {
			bar.Finish()
		}
		if err != nil {
			return err
		}

		replaced := 0
		for _, r := range results {
			if r.Replaced {
				replaced++
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Synchronized %d assets to release %s (%d replaced)\n",
			len(results), rootTag, replaced)
		return nil
	},
}

// Execute runs the command tree and owns the process exit code: typed
// failures surface here, get reported once, and terminate with a
// non-zero exit.
func Execute() {
	config.Init()

	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, ghapi.ErrReleaseNotFound),
			errors.Is(err, ghapi.ErrUnauthorized),
			errors.Is(err, syncer.ErrNoUploadURL):
			logger.Log.Error(err.Error())
		default:
			logger.Log.Error("Command failed", "err", err)
		}
		os.Exit(1)
	}
}

// newClient builds the API client, honoring config overrides for the
// base URL (GitHub Enterprise hosts) and the request timeout.
func newClient(token string) *ghapi.Client {
	c := ghapi.NewClient(token)
	if base := viper.GetString("github.api_base"); base != "" {
		c.BaseURL = base
	}
	if d := viper.GetDuration("http.timeout"); d > 0 {
		c.HTTPClient.Timeout = d
	}
	return c
}

func init() {
	rootCmd.Flags().StringVar(&rootTag, "tag", "", "Release tag to synchronize (required)")
	rootCmd.Flags().StringArrayVar(&rootFiles, "files", nil, "File or directory path; repeatable (required)")
	rootCmd.Flags().StringVar(&rootToken, "token", "", "Authentication token for API access (required)")
	rootCmd.Flags().StringVar(&rootProject, "project", "", "Project in '[OWNER]/[REPO]' form (required)")

	_ = rootCmd.MarkFlagRequired("tag")
	_ = rootCmd.MarkFlagRequired("files")
	_ = rootCmd.MarkFlagRequired("token")
	_ = rootCmd.MarkFlagRequired("project")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newTuiCmd())
}
