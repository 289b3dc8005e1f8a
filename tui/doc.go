// Package tui implements the Bubble Tea terminal UI for the application.
// It provides text inputs for project/tag/files/token and keybind-driven
// actions to run a release-asset synchronization and inspect its results.
package tui
