// Package syncer drives a release-asset synchronization run: fetch
// the release, resolve the local files, and upload each one, replacing
// any remote asset that already carries the same name.
package syncer

import (
	"context"
	"errors"
	"fmt"

	"github.com/zckv/action-update-release/internal/fileset"
	"github.com/zckv/action-update-release/internal/ghapi"
)

// ErrNoUploadURL reports a fetched release whose record is missing an
// upload URL and therefore cannot accept assets.
var ErrNoUploadURL = errors.New("release record is missing an upload URL")

// ReleaseAPI is the slice of the GitHub client the syncer needs.
type ReleaseAPI interface {
	ReleaseByTag(ctx context.Context, project, tag string) (*ghapi.Release, error)
	UploadAsset(ctx context.Context, uploadURL, path string) error
	DeleteAsset(ctx context.Context, project string, assetID int64) error
}

// Options configures a run.
type Options struct {
	Project string // "owner/repo"
	Tag     string
	Paths   []string // files and/or directories to resolve
}

// Result records the outcome for a single file.
type Result struct {
	Name     string
	Path     string
	Replaced bool // an existing asset with the same name was deleted first
}

// Events carries optional progress callbacks.
type Events struct {
	Resolved func(total int)
	Synced   func(Result)
}

// Sync synchronizes the resolved files onto the release identified by
// opts.Project and opts.Tag. Files are processed in resolution order;
// for each one the release's asset list is scanned for the first name
// match, which is deleted before the new upload. The delete/upload
// pair is not transactional: a failed upload after a successful delete
// leaves the release without that asset until a later run retries it.
func Sync(ctx context.Context, api ReleaseAPI, opts Options, ev Events) ([]Result, error) {
	rel, err := api.ReleaseByTag(ctx, opts.Project, opts.Tag)
	if err != nil {
		return nil, err
	}
	if rel.UploadURL == "" {
		return nil, fmt.Errorf("release with tag %q: %w", opts.Tag, ErrNoUploadURL)
	}

	files := fileset.Resolve(opts.Paths)
	if ev.Resolved != nil {
		ev.Resolved(files.Len())
	}

	results := make([]Result, 0, files.Len())
	for _, f := range files.Files() {
		replaced := false
		for _, asset := range rel.Assets {
			if asset.Name != f.Name {
				continue
			}
			if err := api.DeleteAsset(ctx, opts.Project, asset.ID); err != nil {
				return results, err
			}
			replaced = true
			break
		}

		if err := api.UploadAsset(ctx, rel.UploadURL, f.Path); err != nil {
			return results, err
		}

		r := Result{Name: f.Name, Path: f.Path, Replaced: replaced}
		results = append(results, r)
		if ev.Synced != nil {
			ev.Synced(r)
		}
	}

	return results, nil
}
