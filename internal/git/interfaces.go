package git

import "context"

// ChangeLister lists the paths that differ between two refs.
// This abstraction allows swapping the git executable for go-git and for
// test doubles.
type ChangeLister interface {
	// ListChanges returns the repository-relative, slash-separated paths whose
	// content or existence differs between before and after. A null before
	// (see IsNullRef) compares after against the empty tree.
	ListChanges(ctx context.Context, before, after string) ([]string, error)
}

// Compile-time interface conformance checks.
var (
	_ ChangeLister = (*CLILister)(nil)
	_ ChangeLister = (*GoGitLister)(nil)
)

// NewChangeLister returns the lister for the given backend.
func NewChangeLister(backend Backend, repoPath string) (ChangeLister, error) {
	switch backend {
	case BackendGoGit:
		return NewGoGitLister(repoPath)
	default:
		return NewCLILister(repoPath), nil
	}
}
