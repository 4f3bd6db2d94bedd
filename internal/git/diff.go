package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CLILister lists changed paths by invoking the git executable.
type CLILister struct {
	RepoPath string
	// GitPath is the git executable. Empty means "git" looked up in PATH.
	GitPath string
}

// NewCLILister creates a lister for the repository at repoPath.
func NewCLILister(repoPath string) *CLILister {
	return &CLILister{RepoPath: repoPath}
}

// ListChanges runs `git diff --name-only` between the two refs.
// Renames are reported as a deletion plus an addition so both sides are
// visible to the caller.
func (l *CLILister) ListChanges(ctx context.Context, before, after string) ([]string, error) {
	gitPath, err := l.gitExecutable()
	if err != nil {
		return nil, err
	}

	if err := l.ensureRepository(ctx, gitPath); err != nil {
		return nil, err
	}

	after = strings.TrimSpace(after)
	if after == "" {
		after = DefaultAfterRef
	}
	afterSHA, err := l.resolveCommit(ctx, gitPath, after)
	if err != nil {
		return nil, err
	}

	// No prior commit: everything in after counts as changed.
	// --full-tree keeps paths root-relative when RepoPath is a subdirectory.
	if IsNullRef(before) {
		out, stderr, err := l.run(ctx, gitPath, "ls-tree", "-r", "--full-tree", "--name-only", "-z", afterSHA)
		if err != nil {
			return nil, &ExecutionError{Op: "git ls-tree", Output: stderr, Err: err}
		}
		return parseNameOnly(out), nil
	}

	beforeSHA, err := l.resolveCommit(ctx, gitPath, strings.TrimSpace(before))
	if err != nil {
		return nil, err
	}
	if beforeSHA == afterSHA {
		return nil, nil
	}

	out, stderr, err := l.run(ctx, gitPath,
		"diff",
		"--name-only",
		"--no-renames",
		"--no-relative",
		"-z",
		beforeSHA,
		afterSHA,
	)
	if err != nil {
		return nil, &ExecutionError{Op: "git diff", Output: stderr, Err: err}
	}

	return parseNameOnly(out), nil
}

func (l *CLILister) gitExecutable() (string, error) {
	name := l.GitPath
	if name == "" {
		name = "git"
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &ExecutionError{Op: "locate git executable", Err: err}
	}
	return path, nil
}

func (l *CLILister) ensureRepository(ctx context.Context, gitPath string) error {
	if _, stderr, err := l.run(ctx, gitPath, "rev-parse", "--git-dir"); err != nil {
		return &ExecutionError{
			Op:     fmt.Sprintf("open repository %q", l.RepoPath),
			Output: stderr,
			Err:    err,
		}
	}
	return nil
}

// resolveCommit resolves ref to a full commit id.
func (l *CLILister) resolveCommit(ctx context.Context, gitPath, ref string) (string, error) {
	if strings.HasPrefix(ref, "-") {
		return "", &ReferenceError{Ref: ref, Err: errors.New("ref must not start with '-'")}
	}

	out, stderr, err := l.run(ctx, gitPath, "rev-parse", "--verify", "--quiet", ref+"^{commit}")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return "", &ReferenceError{Ref: ref, Output: stderr, Err: errors.New("not a commit in the available history")}
		}
		return "", &ExecutionError{Op: "git rev-parse", Output: stderr, Err: err}
	}

	sha := strings.TrimSpace(string(out))
	if sha == "" {
		return "", &ReferenceError{Ref: ref, Err: errors.New("empty rev-parse output")}
	}
	return sha, nil
}

func (l *CLILister) run(ctx context.Context, gitPath string, args ...string) ([]byte, string, error) {
	repo := l.RepoPath
	if repo == "" {
		repo = "."
	}

	cmd := exec.CommandContext(ctx, gitPath, append([]string{"-C", repo}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), strings.TrimSpace(stderr.String()), err
}

// parseNameOnly parses NUL-delimited `--name-only -z` output.
func parseNameOnly(data []byte) []string {
	parts := bytes.Split(data, []byte{0x00})

	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		paths = append(paths, normalizeChangedPath(string(p)))
	}
	return paths
}
