package version

import (
	"sort"
	"strings"

	hashiver "github.com/hashicorp/go-version"
)

// NormalizeTag strips a single leading "v" or "V" from a git tag for display.
//
// Examples:
//   - "v0.6.5" -> "0.6.5"
//   - "V1.2"   -> "1.2"
//   - "1.2"    -> "1.2"
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if len(tag) > 1 && (tag[0] == 'v' || tag[0] == 'V') {
		return tag[1:]
	}
	return tag
}

// Greater reports whether tag a orders after tag b, newest first.
// Version-like tags compare by version precedence (any number of dot
// segments, semver prerelease rules); version-like tags sort before
// anything unparseable; two unparseable tags fall back to lexical
// descending.
func Greater(a, b string) bool {
	va, errA := hashiver.NewVersion(NormalizeTag(a))
	vb, errB := hashiver.NewVersion(NormalizeTag(b))

	switch {
	case errA == nil && errB == nil:
		return va.GreaterThan(vb)
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a > b
	}
}

// SortDesc orders tags in place, newest first.
func SortDesc(tags []string) {
	sort.SliceStable(tags, func(i, j int) bool {
		return Greater(tags[i], tags[j])
	})
}
