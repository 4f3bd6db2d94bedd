package output

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/masmgr/pathchanged/internal/check"
)

// JSONWriter writes the result as a single JSON object line. Into a
// GITHUB_OUTPUT file it writes `name=true|false` followed by
// `name_json=<object>` so the boolean output stays usable.
type JSONWriter struct{}

// JSONResult is the JSON output structure for a check result.
type JSONResult struct {
	Name        string `json:"name"`
	Changed     bool   `json:"changed"`
	WatchPath   string `json:"watchPath"`
	MatchedPath string `json:"matchedPath,omitempty"`
	Before      string `json:"before"`
	After       string `json:"after"`
	Considered  int    `json:"considered"`
}

// Write appends the JSON line.
func (w *JSONWriter) Write(result check.Result, options OutputOptions) error {
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

	data, err := json.Marshal(JSONResult{
		Name:        name,
		Changed:     result.Changed,
		WatchPath:   result.WatchPath,
		MatchedPath: result.MatchedPath,
		Before:      result.Before,
		After:       result.After,
		Considered:  result.Considered,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if options.GitHubOutput {
		_, err = fmt.Fprintf(out, "%s=%s\n%s_json=%s\n", name, strconv.FormatBool(result.Changed), name, data)
	} else {
		_, err = fmt.Fprintf(out, "%s\n", data)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if file != nil {
		return file.Close()
	}
	return nil
}
