// Package ghapi is a thin client for the GitHub Releases REST API.
// It covers the four operations this tool needs — fetch a release by
// tag, upload an asset, delete an asset, download an asset — plus tag
// listing via git ls-remote. Authorization, existence and generic
// request failures are decoded into typed errors; process-exit policy
// lives with the caller.
package ghapi
