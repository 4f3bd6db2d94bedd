package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// testRepo is a temporary repository built with go-git.
type testRepo struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
	when time.Time
}

// createTestRepo initializes an empty repository in a temp dir.
func createTestRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := t.TempDir()

	// Keep git from discovering a repository above the temp dir.
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	return &testRepo{
		t:    t,
		dir:  dir,
		repo: repo,
		when: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// commit writes files (path -> content), removes the listed paths and
// commits. It returns the commit hash.
func (r *testRepo) commit(message string, files map[string]string, remove ...string) string {
	r.t.Helper()

	w, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("Failed to get worktree: %v", err)
	}

	for name, content := range files {
		path := filepath.Join(r.dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			r.t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			r.t.Fatalf("Failed to write file: %v", err)
		}
		if _, err := w.Add(name); err != nil {
			r.t.Fatalf("Failed to add file: %v", err)
		}
	}

	for _, name := range remove {
		if _, err := w.Remove(name); err != nil {
			r.t.Fatalf("Failed to remove file: %v", err)
		}
	}

	r.when = r.when.Add(time.Minute)
	hash, err := w.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  r.when,
		},
	})
	if err != nil {
		r.t.Fatalf("Failed to commit: %v", err)
	}
	return hash.String()
}

// requireGit skips the test when the git executable is unavailable.
func requireGit(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not available")
	}
}
