// Package cmd defines the Cobra command tree for the application.
// The root command performs the release-asset synchronization, and
// subcommands provide supporting operations such as listing tags,
// downloading a single asset and running the interactive TUI.
package cmd
