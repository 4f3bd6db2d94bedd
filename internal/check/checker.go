// Package check answers whether anything under a watched path changed
// between two commits.
package check

import (
	"context"
	"fmt"
	"strings"

	"github.com/masmgr/pathchanged/internal/git"
	"github.com/masmgr/pathchanged/internal/pathmatch"
)

// Request describes a single change check. It is built once per invocation.
type Request struct {
	RepoPath  string
	Before    string
	After     string
	WatchPath string
	Exclude   []string
}

// NewRequest validates and builds a Request.
func NewRequest(repoPath, before, after, watchPath string, exclude []string) (Request, error) {
	if strings.TrimSpace(watchPath) == "" {
		return Request{}, pathmatch.ErrEmptyWatchPath
	}
	if repoPath == "" {
		repoPath = "."
	}
	return Request{
		RepoPath:  repoPath,
		Before:    strings.TrimSpace(before),
		After:     strings.TrimSpace(after),
		WatchPath: watchPath,
		Exclude:   exclude,
	}, nil
}

// Result is the outcome of a check.
type Result struct {
	Changed     bool
	MatchedPath string
	WatchPath   string
	Before      string
	After       string
	// Considered is the number of changed paths examined.
	Considered int
}

// Checker runs change checks against a ChangeLister.
type Checker struct {
	lister git.ChangeLister
}

// NewChecker creates a Checker backed by lister.
func NewChecker(lister git.ChangeLister) *Checker {
	return &Checker{lister: lister}
}

// Check lists the paths changed between req.Before and req.After and
// reports whether any of them is the watch path or lies beneath it.
// Errors from the lister are returned unchanged and no result is produced.
func (c *Checker) Check(ctx context.Context, req Request) (Result, error) {
	matcher, err := pathmatch.New(req.WatchPath, req.Exclude)
	if err != nil {
		return Result{}, err
	}

	after := req.After
	if after == "" {
		after = git.DefaultAfterRef
	}

	paths, err := c.lister.ListChanges(ctx, req.Before, after)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		WatchPath: matcher.WatchPath(),
		Before:    req.Before,
		After:     after,
	}
	if i := matcher.FirstMatch(paths); i >= 0 {
		result.Changed = true
		result.MatchedPath = paths[i]
		result.Considered = i + 1
	} else {
		result.Considered = len(paths)
	}
	return result, nil
}

// String renders the result for diagnostics.
func (r Result) String() string {
	before := r.Before
	if git.IsNullRef(before) {
		before = "(none)"
	}
	if r.Changed {
		return fmt.Sprintf("%s changed between %s and %s (%s)", r.WatchPath, before, r.After, r.MatchedPath)
	}
	return fmt.Sprintf("%s unchanged between %s and %s (%d paths examined)", r.WatchPath, before, r.After, r.Considered)
}
