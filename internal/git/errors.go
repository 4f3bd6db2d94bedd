package git

import (
	"errors"
	"fmt"
)

// ReferenceError reports a ref that cannot be resolved to a commit in the
// available history, e.g. a "before" commit missing from a shallow clone.
type ReferenceError struct {
	Ref    string
	Output string // diagnostic output of the tool, if any
	Err    error
}

func (e *ReferenceError) Error() string {
	msg := fmt.Sprintf("cannot resolve ref %q", e.Ref)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// ExecutionError reports a failure to run the change query itself: the git
// executable is missing, the directory is not a repository, or the command
// exited non-zero.
type ExecutionError struct {
	Op     string
	Output string
	Err    error
}

func (e *ExecutionError) Error() string {
	msg := e.Op + " failed"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// IsReferenceError reports whether err wraps a *ReferenceError.
func IsReferenceError(err error) bool {
	var target *ReferenceError
	return errors.As(err, &target)
}

// IsExecutionError reports whether err wraps an *ExecutionError.
func IsExecutionError(err error) bool {
	var target *ExecutionError
	return errors.As(err, &target)
}
