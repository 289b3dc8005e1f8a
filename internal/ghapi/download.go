package ghapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// FindAsset returns the release asset with the given name.
func (r *Release) FindAsset(name string) (Asset, error) {
	for _, a := range r.Assets {
		if a.Name == name {
			if a.BrowserDownloadURL == "" {
				return Asset{}, fmt.Errorf("asset %q has empty browser_download_url", name)
			}
			return a, nil
		}
	}
	return Asset{}, fmt.Errorf("asset %q not found", name)
}

// DownloadAsset streams the asset's content into w. The download uses
// the asset's browser_download_url, which may redirect; the bearer
// token may not apply to the final redirected request.
func (c *Client) DownloadAsset(ctx context.Context, asset Asset, w io.Writer) error {
	req, err := c.newRequest(ctx, http.MethodGet, asset.BrowserDownloadURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("download asset %q: %w", asset.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Op: fmt.Sprintf("download asset %q", asset.Name), StatusCode: resp.StatusCode, Body: readErrBody(resp.Body)}
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("stream asset %q: %w", asset.Name, err)
	}

	return nil
}

// WriteFileAtomically writes a file to outPath by writing to a
// temporary file in the destination directory and then renaming it
// into place.
func WriteFileAtomically(outPath string, write func(f *os.File) error) error {
	if outPath == "" {
		return fmt.Errorf("outPath is empty")
	}

	dir := filepath.Dir(outPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// Best-effort cleanup: if we fail prior to rename, remove the temp file.
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if err := write(tmp); err != nil {
		return err
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, outPath); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
