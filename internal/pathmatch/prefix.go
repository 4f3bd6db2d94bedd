// Package pathmatch decides whether a changed path falls under a watched
// path prefix.
package pathmatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrEmptyWatchPath is returned when no watch path is supplied.
var ErrEmptyWatchPath = errors.New("watch path is required")

// Matcher tests repository-relative paths against a literal watch prefix.
// The watch path is never treated as a glob; only exclude patterns are.
type Matcher struct {
	watch   string
	root    bool
	exclude []string
}

// New creates a Matcher for watchPath. Exclude patterns are doublestar
// globs evaluated against the full changed path.
func New(watchPath string, exclude []string) (*Matcher, error) {
	if strings.TrimSpace(watchPath) == "" {
		return nil, ErrEmptyWatchPath
	}

	watch := NormalizeWatchPath(watchPath)

	patterns := make([]string, 0, len(exclude))
	for _, pattern := range exclude {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
		patterns = append(patterns, pattern)
	}

	return &Matcher{
		watch:   watch,
		root:    watch == "" || watch == ".",
		exclude: patterns,
	}, nil
}

// NormalizeWatchPath converts a user-supplied watch path to the form git
// reports paths in: slash separated, no leading "./" or "/", no trailing
// slash.
func NormalizeWatchPath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.ReplaceAll(p, "\\", "/")
	for {
		switch {
		case strings.HasPrefix(p, "./"):
			p = p[2:]
		case strings.HasPrefix(p, "/"):
			p = p[1:]
		default:
			return strings.TrimRight(p, "/")
		}
	}
}

// WatchPath returns the normalized watch path.
func (m *Matcher) WatchPath() string {
	return m.watch
}

// Matches reports whether path is the watch path itself or lies beneath it.
// "foo" matches "foo" and "foo/x.txt" but not "foobar/x.txt".
func (m *Matcher) Matches(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")
	if path == "" || m.Excluded(path) {
		return false
	}
	if m.root {
		return true
	}
	return path == m.watch || strings.HasPrefix(path, m.watch+"/")
}

// Excluded reports whether path matches one of the exclude patterns.
func (m *Matcher) Excluded(path string) bool {
	for _, pattern := range m.exclude {
		// Patterns were validated in New.
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}

// FirstMatch returns the index of the first path that Matches, or -1.
func (m *Matcher) FirstMatch(paths []string) int {
	for i, p := range paths {
		if m.Matches(p) {
			return i
		}
	}
	return -1
}
