package syncer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zckv/action-update-release/internal/ghapi"
)

type fakeAPI struct {
	release   *ghapi.Release
	fetchErr  error
	uploadErr error

	calls []string
}

func (f *fakeAPI) ReleaseByTag(ctx context.Context, project, tag string) (*ghapi.Release, error) {
	f.calls = append(f.calls, "fetch "+project+"@"+tag)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.release, nil
}

func (f *fakeAPI) UploadAsset(ctx context.Context, uploadURL, path string) error {
	f.calls = append(f.calls, "upload "+filepath.Base(path))
	return f.uploadErr
}

func (f *fakeAPI) DeleteAsset(ctx context.Context, project string, assetID int64) error {
	f.calls = append(f.calls, fmt.Sprintf("delete %d", assetID))
	return nil
}

func writeFiles(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("data"), 0o644))
		paths = append(paths, p)
	}
	return paths
}

func release(assets ...ghapi.Asset) *ghapi.Release {
	return &ghapi.Release{
		ID:        7,
		UploadURL: "https://uploads.example.com/repos/o/r/releases/7/assets{?name,label}",
		Assets:    assets,
	}
}

func TestSyncReplacesMatchingAsset(t *testing.T) {
	api := &fakeAPI{release: release(ghapi.Asset{ID: 1, Name: "a.zip"})}
	paths := writeFiles(t, "a.zip", "b.zip")

	results, err := Sync(context.Background(), api, Options{
		Project: "o/r",
		Tag:     "v1.0.0",
		Paths:   paths,
	}, Events{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"fetch o/r@v1.0.0",
		"delete 1",
		"upload a.zip",
		"upload b.zip",
	}, api.calls)

	require.Len(t, results, 2)
	assert.True(t, results[0].Replaced)
	assert.False(t, results[1].Replaced)
}

func TestSyncUploadsNewAssetWithoutDelete(t *testing.T) {
	api := &fakeAPI{release: release(ghapi.Asset{ID: 1, Name: "other.zip"})}
	paths := writeFiles(t, "a.zip")

	results, err := Sync(context.Background(), api, Options{Project: "o/r", Tag: "v1", Paths: paths}, Events{})
	require.NoError(t, err)

	assert.Equal(t, []string{"fetch o/r@v1", "upload a.zip"}, api.calls)
	require.Len(t, results, 1)
	assert.False(t, results[0].Replaced)
}

func TestSyncStopsAtFirstNameMatch(t *testing.T) {
	// Asset lists are assumed to carry unique names; only the first
	// match is deleted if they do not.
	api := &fakeAPI{release: release(
		ghapi.Asset{ID: 1, Name: "a.zip"},
		ghapi.Asset{ID: 2, Name: "a.zip"},
	)}
	paths := writeFiles(t, "a.zip")

	_, err := Sync(context.Background(), api, Options{Project: "o/r", Tag: "v1", Paths: paths}, Events{})
	require.NoError(t, err)

	assert.Equal(t, []string{"fetch o/r@v1", "delete 1", "upload a.zip"}, api.calls)
}

func TestSyncFetchFailureIssuesNoOtherCalls(t *testing.T) {
	api := &fakeAPI{fetchErr: fmt.Errorf("release with tag %q: %w", "v1", ghapi.ErrReleaseNotFound)}
	paths := writeFiles(t, "a.zip")

	_, err := Sync(context.Background(), api, Options{Project: "o/r", Tag: "v1", Paths: paths}, Events{})
	assert.ErrorIs(t, err, ghapi.ErrReleaseNotFound)
	assert.Equal(t, []string{"fetch o/r@v1"}, api.calls)
}

func TestSyncRejectsReleaseWithoutUploadURL(t *testing.T) {
	api := &fakeAPI{release: &ghapi.Release{ID: 7}}
	paths := writeFiles(t, "a.zip")

	_, err := Sync(context.Background(), api, Options{Project: "o/r", Tag: "v1", Paths: paths}, Events{})
	assert.ErrorIs(t, err, ErrNoUploadURL)
	assert.Equal(t, []string{"fetch o/r@v1"}, api.calls)
}

func TestSyncStopsAfterUploadFailure(t *testing.T) {
	// Delete-then-upload is not transactional: a failed upload leaves
	// the already-deleted asset gone and halts the run.
	api := &fakeAPI{
		release:   release(ghapi.Asset{ID: 1, Name: "a.zip"}),
		uploadErr: fmt.Errorf("upload asset: %w", ghapi.ErrUnauthorized),
	}
	paths := writeFiles(t, "a.zip", "b.zip")

	results, err := Sync(context.Background(), api, Options{Project: "o/r", Tag: "v1", Paths: paths}, Events{})
	assert.ErrorIs(t, err, ghapi.ErrUnauthorized)
	assert.Equal(t, []string{"fetch o/r@v1", "delete 1", "upload a.zip"}, api.calls)
	assert.Empty(t, results)
}

func TestSyncEvents(t *testing.T) {
	api := &fakeAPI{release: release()}
	paths := writeFiles(t, "a.zip", "b.zip")

	var total int
	var synced []string
	_, err := Sync(context.Background(), api, Options{Project: "o/r", Tag: "v1", Paths: paths}, Events{
		Resolved: func(n int) { total = n },
		Synced:   func(r Result) { synced = append(synced, r.Name) },
	})
	require.NoError(t, err)

	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"a.zip", "b.zip"}, synced)
}
