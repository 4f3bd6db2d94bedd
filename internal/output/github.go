package output

import (
	"fmt"
	"strconv"

	"github.com/masmgr/pathchanged/internal/check"
)

// GitHubWriter appends `name=true|false` lines in the GITHUB_OUTPUT format.
type GitHubWriter struct{}

// Write appends the result line.
func (w *GitHubWriter) Write(result check.Result, options OutputOptions) error {
	name, err := outputName(options)
	if err != nil {
		return err
	}

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if _, err := fmt.Fprintf(out, "%s=%s\n", name, strconv.FormatBool(result.Changed)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if file != nil {
		return file.Close()
	}
	return nil
}
