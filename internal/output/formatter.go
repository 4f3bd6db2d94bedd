package output

import (
	"fmt"
	"strings"

	"github.com/masmgr/pathchanged/internal/check"
)

// Compile-time interface conformance checks.
var (
	_ ResultWriter = (*GitHubWriter)(nil)
	_ ResultWriter = (*JSONWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatGitHub OutputFormat = "github"
	FormatJSON   OutputFormat = "json"
)

// DefaultName is the key the result is published under.
const DefaultName = "changed"

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format OutputFormat
	// OutputPath is the file the result is appended to; "-" is stdout.
	OutputPath string
	// Name is the output key. Empty means DefaultName.
	Name string
	// GitHubOutput marks OutputPath as the runner's GITHUB_OUTPUT file,
	// which only accepts key=value lines.
	GitHubOutput bool
}

// ResultWriter publishes a check result.
type ResultWriter interface {
	Write(result check.Result, options OutputOptions) error
}

// NewResultWriter creates a result writer for the specified format.
func NewResultWriter(format OutputFormat) ResultWriter {
	switch format {
	case FormatJSON:
		return &JSONWriter{}
	default:
		return &GitHubWriter{}
	}
}

// ParseFormat parses an output format name. Empty means FormatGitHub.
func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "github", "github-output", "env":
		return FormatGitHub, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected github or json)", s)
	}
}

func outputName(options OutputOptions) (string, error) {
	name := strings.TrimSpace(options.Name)
	if name == "" {
		return DefaultName, nil
	}
	if strings.ContainsAny(name, "=\r\n") {
		return "", fmt.Errorf("invalid output name %q", name)
	}
	return name, nil
}
