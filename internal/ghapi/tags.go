package ghapi

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// RemoteURL returns the canonical HTTPS Git remote URL for a project
// in "owner/repo" form.
func RemoteURL(project string) string {
	return fmt.Sprintf("https://github.com/%s.git", strings.TrimSpace(project))
}

// ListTags retrieves all tag names from a remote Git repository by
// executing:
//
//	git ls-remote --tags <remoteURL>
//
// Annotated tag dereferences ("^{}") are stripped; the resulting list
// is de-duplicated and returned in sorted order.
func ListTags(ctx context.Context, remoteURL string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "ls-remote", "--tags", remoteURL)

	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("git ls-remote failed: %w; stderr=%s", err, string(ee.Stderr))
		}
		return nil, fmt.Errorf("git ls-remote failed: %w", err)
	}

	return parseTags(out)
}

func parseTags(out []byte) ([]string, error) {
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}

		ref := fields[1]
		const prefix = "refs/tags/"
		if !strings.HasPrefix(ref, prefix) {
			continue
		}

		tag := strings.TrimSuffix(strings.TrimPrefix(ref, prefix), "^{}")
		if tag == "" {
			continue
		}
		seen[tag] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan git output: %w", err)
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	return tags, nil
}
