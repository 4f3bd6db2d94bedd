package cmd

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// envVars are cleared for every CLI test so the runner's own environment
// cannot leak into flag defaults.
var envVars = []string{
	"INPUT_PATH", "INPUT_BEFORE", "INPUT_AFTER", "INPUT_REPO", "INPUT_NAME",
	"INPUT_FORMAT", "INPUT_BACKEND", "INPUT_EXCLUDE", "INPUT_CONFIG",
	"GITHUB_WORKSPACE", "GITHUB_OUTPUT", "GITHUB_EVENT_PATH", "GITHUB_SHA",
	"RUNNER_DEBUG",
}

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("HOME", t.TempDir())
}

// createTestRepo creates a temporary git repository and applies commits in
// order. Each commit maps paths to contents; an empty content deletes the
// path. It returns the repository dir and the commit hashes.
func createTestRepo(t *testing.T, commits ...map[string]string) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	when := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var hashes []string
	for i, files := range commits {
		for name, content := range files {
			if content == "" {
				if _, err := w.Remove(name); err != nil {
					t.Fatalf("Failed to remove file: %v", err)
				}
				continue
			}
			path := filepath.Join(dir, filepath.FromSlash(name))
			os.MkdirAll(filepath.Dir(path), 0755)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("Failed to write file: %v", err)
			}
			if _, err := w.Add(name); err != nil {
				t.Fatalf("Failed to add file: %v", err)
			}
		}

		hash, err := w.Commit("commit", &git.CommitOptions{
			Author: &object.Signature{
				Name:  "Test Author",
				Email: "test@example.com",
				When:  when.Add(time.Duration(i) * time.Minute),
			},
		})
		if err != nil {
			t.Fatalf("Failed to commit: %v", err)
		}
		hashes = append(hashes, hash.String())
	}
	return dir, hashes
}

// runApp runs the CLI with args, discarding console diagnostics.
func runApp(args ...string) error {
	app := App()
	app.ErrWriter = io.Discard
	app.Writer = io.Discard
	return app.Run(append([]string{"pathchanged"}, args...))
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("Failed to read output: %v", err)
	}
	return string(data)
}

func requireGit(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not available")
	}
}
