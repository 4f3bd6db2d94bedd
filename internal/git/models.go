package git

import (
	"fmt"
	"strings"
)

// Backend selects the implementation used to list changed paths.
type Backend string

const (
	BackendCLI   Backend = "cli"
	BackendGoGit Backend = "go-git"
)

// ParseBackend parses a backend name. Empty means the CLI backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cli", "git":
		return BackendCLI, nil
	case "go-git", "gogit", "native":
		return BackendGoGit, nil
	default:
		return "", fmt.Errorf("invalid backend %q (expected cli or go-git)", s)
	}
}

// DefaultAfterRef is used when no "after" ref is supplied.
const DefaultAfterRef = "HEAD"

// IsNullRef reports whether ref denotes "no prior commit": an empty ref or
// the all-zero object id pushed by hosts on branch creation (SHA-1 or
// SHA-256 length).
func IsNullRef(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return true
	}
	if len(ref) != 40 && len(ref) != 64 {
		return false
	}
	return strings.Trim(ref, "0") == ""
}

// normalizeChangedPath converts a path reported by git to the slash form
// used for matching.
func normalizeChangedPath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
