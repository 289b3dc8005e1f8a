package ghapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// apiVersion pins the REST API revision on every request.
const apiVersion = "2022-11-28"

// Release models the fields of the
// GET /repos/{project}/releases/tags/{tag} response needed to
// synchronize assets.
type Release struct {
	ID        int64   `json:"id"`
	TagName   string  `json:"tag_name"`
	UploadURL string  `json:"upload_url"`
	Assets    []Asset `json:"assets"`
}

// Asset is a single uploaded file attached to a release.
type Asset struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Size               int64  `json:"size"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Client talks to the GitHub REST API. BaseURL exists as a seam for
// tests and GitHub Enterprise hosts.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
}

// NewClient returns a Client with a fixed, request-wide timeout
// against the public GitHub API.
func NewClient(token string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		BaseURL:    "https://api.github.com",
		Token:      token,
	}
}

// newRequest builds a request carrying the bearer token, the JSON
// accept header and the pinned API version.
func (c *Client) newRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	return req, nil
}

// ReleaseByTag fetches the release record for project ("owner/repo")
// and tag. A 404 maps to ErrReleaseNotFound and a 401 to
// ErrUnauthorized; any other non-200 status becomes a *StatusError.
func (c *Client) ReleaseByTag(ctx context.Context, project, tag string) (*Release, error) {
	apiURL := fmt.Sprintf("%s/repos/%s/releases/tags/%s", strings.TrimRight(c.BaseURL, "/"), project, tag)

	req, err := c.newRequest(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch release: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var rel Release
		if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
			return nil, fmt.Errorf("decode release JSON: %w", err)
		}
		return &rel, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("release with tag %q: %w", tag, ErrReleaseNotFound)
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("fetch release: %w", ErrUnauthorized)
	default:
		return nil, &StatusError{Op: "fetch release", StatusCode: resp.StatusCode, Body: readErrBody(resp.Body)}
	}
}

// UploadAsset posts the file at path as a release asset. uploadURL is
// the upload_url template from the release record; its parametrized
// suffix (delimited by '{') is stripped before the name query
// parameter is appended. The file must exist before any network I/O
// happens.
func (c *Client) UploadAsset(ctx context.Context, uploadURL, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("upload asset: %w", err)
	}

	if i := strings.IndexByte(uploadURL, '{'); i >= 0 {
		uploadURL = uploadURL[:i]
	}
	name := filepath.Base(path)
	apiURL := uploadURL + "?name=" + url.QueryEscape(name)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("upload asset: %w", err)
	}
	defer f.Close()

	req, err := c.newRequest(ctx, http.MethodPost, apiURL, f)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.ContentLength = info.Size()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload asset %q: %w", name, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("upload asset %q: %w", name, ErrUnauthorized)
	default:
		return &StatusError{Op: fmt.Sprintf("upload asset %q", name), StatusCode: resp.StatusCode, Body: readErrBody(resp.Body)}
	}
}

// DeleteAsset removes a release asset by its numeric id.
func (c *Client) DeleteAsset(ctx context.Context, project string, assetID int64) error {
	apiURL := fmt.Sprintf("%s/repos/%s/releases/assets/%d", strings.TrimRight(c.BaseURL, "/"), project, assetID)

	req, err := c.newRequest(ctx, http.MethodDelete, apiURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete asset %d: %w", assetID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("delete asset %d: %w", assetID, ErrUnauthorized)
	default:
		return &StatusError{Op: fmt.Sprintf("delete asset %d", assetID), StatusCode: resp.StatusCode, Body: readErrBody(resp.Body)}
	}
}

func readErrBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 64<<10))
	return strings.TrimSpace(string(b))
}
