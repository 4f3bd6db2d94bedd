package output

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/masmgr/pathchanged/internal/check"
)

func TestGitHubWriter_Write(t *testing.T) {
	tests := []struct {
		name    string
		changed bool
		want    string
	}{
		{name: "Changed", changed: true, want: "changed=true\n"},
		{name: "Unchanged", changed: false, want: "changed=false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "github_output.txt")

			w := &GitHubWriter{}
			if err := w.Write(check.Result{Changed: tt.changed}, OutputOptions{OutputPath: path}); err != nil {
				t.Fatalf("Write failed: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Failed to read output: %v", err)
			}
			if string(data) != tt.want {
				t.Fatalf("output = %q, want %q", string(data), tt.want)
			}
		})
	}
}

func TestGitHubWriter_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github_output.txt")
	if err := os.WriteFile(path, []byte("other=1\n"), 0o644); err != nil {
		t.Fatalf("seed output: %v", err)
	}

	w := &GitHubWriter{}
	if err := w.Write(check.Result{Changed: true}, OutputOptions{OutputPath: path, Name: "docs"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if got, want := string(data), "other=1\ndocs=true\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestGitHubWriter_NoDestination(t *testing.T) {
	w := &GitHubWriter{}
	err := w.Write(check.Result{}, OutputOptions{})
	if !errors.Is(err, ErrNoDestination) {
		t.Fatalf("expected ErrNoDestination, got %v", err)
	}
}

func TestGitHubWriter_InvalidName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	w := &GitHubWriter{}
	if err := w.Write(check.Result{}, OutputOptions{OutputPath: path, Name: "a=b"}); err == nil {
		t.Fatal("expected error for invalid name")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("output file created despite invalid name")
	}
}

func TestJSONWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	result := check.Result{
		Changed:     true,
		WatchPath:   "mon-dossier",
		MatchedPath: "mon-dossier/a.txt",
		Before:      "abc",
		After:       "def",
		Considered:  2,
	}

	w := &JSONWriter{}
	if err := w.Write(result, OutputOptions{Format: FormatJSON, OutputPath: path}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	var got JSONResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", string(data), err)
	}
	if got.Name != "changed" || !got.Changed || got.MatchedPath != "mon-dossier/a.txt" || got.Considered != 2 {
		t.Fatalf("unexpected JSON result: %+v", got)
	}
}

func TestCheckDestination(t *testing.T) {
	if err := CheckDestination(""); !errors.Is(err, ErrNoDestination) {
		t.Fatalf("CheckDestination(\"\") = %v", err)
	}
	if err := CheckDestination(StdoutPath); err != nil {
		t.Fatalf("CheckDestination(-) = %v", err)
	}
}

func TestJSONWriter_GitHubOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github_output")
	result := check.Result{Changed: true, WatchPath: "src", MatchedPath: "src/a.go", After: "HEAD", Considered: 1}

	w := &JSONWriter{}
	if err := w.Write(result, OutputOptions{Format: FormatJSON, OutputPath: path, GitHubOutput: true}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), string(data))
	}
	if lines[0] != "changed=true" {
		t.Errorf("line 1 = %q, want %q", lines[0], "changed=true")
	}
	key, value, ok := strings.Cut(lines[1], "=")
	if !ok || key != "changed_json" {
		t.Fatalf("line 2 = %q, want changed_json=<object>", lines[1])
	}
	var got JSONResult
	if err := json.Unmarshal([]byte(value), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", value, err)
	}
	if !got.Changed || got.MatchedPath != "src/a.go" {
		t.Fatalf("unexpected JSON result: %+v", got)
	}
}
