package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GoGitLister lists changed paths with go-git, without a git executable.
type GoGitLister struct {
	repo *git.Repository
}

// NewGoGitLister opens the repository containing repoPath.
func NewGoGitLister(repoPath string) (*GoGitLister, error) {
	if repoPath == "" {
		repoPath = "."
	}
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &ExecutionError{Op: fmt.Sprintf("open repository %q", repoPath), Err: err}
	}
	return &GoGitLister{repo: repo}, nil
}

// ListChanges compares the trees of the two commits. Renames are not
// detected, so a moved file shows up under both its old and new path.
func (l *GoGitLister) ListChanges(ctx context.Context, before, after string) ([]string, error) {
	after = strings.TrimSpace(after)
	if after == "" {
		after = DefaultAfterRef
	}
	afterCommit, err := l.resolveCommit(after)
	if err != nil {
		return nil, err
	}
	afterTree, err := afterCommit.Tree()
	if err != nil {
		return nil, &ExecutionError{Op: "read tree of " + after, Err: err}
	}

	if IsNullRef(before) {
		return listTree(afterTree)
	}

	beforeCommit, err := l.resolveCommit(strings.TrimSpace(before))
	if err != nil {
		return nil, err
	}
	if beforeCommit.Hash == afterCommit.Hash {
		return nil, nil
	}
	beforeTree, err := beforeCommit.Tree()
	if err != nil {
		return nil, &ExecutionError{Op: "read tree of " + before, Err: err}
	}

	changes, err := object.DiffTreeWithOptions(ctx, beforeTree, afterTree, &object.DiffTreeOptions{})
	if err != nil {
		return nil, &ExecutionError{Op: "diff trees", Err: err}
	}

	paths := make([]string, 0, len(changes))
	for _, change := range changes {
		from, to := change.From.Name, change.To.Name
		if from != "" {
			paths = append(paths, normalizeChangedPath(from))
		}
		if to != "" && to != from {
			paths = append(paths, normalizeChangedPath(to))
		}
	}
	return paths, nil
}

func (l *GoGitLister) resolveCommit(ref string) (*object.Commit, error) {
	if strings.HasPrefix(ref, "-") {
		return nil, &ReferenceError{Ref: ref, Err: errors.New("ref must not start with '-'")}
	}

	hash, err := l.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, &ReferenceError{Ref: ref, Err: err}
	}
	commit, err := l.repo.CommitObject(*hash)
	if err != nil {
		return nil, &ReferenceError{Ref: ref, Err: err}
	}
	return commit, nil
}

// listTree returns every non-directory entry of tree, like `git ls-tree -r`.
func listTree(tree *object.Tree) ([]string, error) {
	walker := object.NewTreeWalker(tree, true, nil)
	defer walker.Close()

	var paths []string
	for {
		name, entry, err := walker.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ExecutionError{Op: "walk tree", Err: err}
		}
		if entry.Mode == filemode.Dir {
			continue
		}
		paths = append(paths, normalizeChangedPath(name))
	}
	return paths, nil
}
