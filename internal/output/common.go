package output

import (
	"errors"
	"io"
	"os"
)

// StdoutPath selects standard output as the destination.
const StdoutPath = "-"

// ErrNoDestination is returned when no output destination is configured.
var ErrNoDestination = errors.New("GITHUB_OUTPUT is not set (use --output - to print to stdout)")

// openOutputWriter opens the destination for appending. The runner reads the
// whole file after the step, so earlier outputs must be preserved.
func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	switch outputPath {
	case "":
		return nil, nil, ErrNoDestination
	case StdoutPath:
		return os.Stdout, nil, nil
	}
	file, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// CheckDestination reports ErrNoDestination early, before any work is done.
func CheckDestination(outputPath string) error {
	if outputPath == "" {
		return ErrNoDestination
	}
	return nil
}
