package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// console writes coloured diagnostics to stderr. Info and Warning are
// dropped unless verbose is set; the result line is always printed.
type console struct {
	w       io.Writer
	verbose bool
}

func newConsole(w io.Writer, verbose bool) *console {
	return &console{w: w, verbose: verbose}
}

// Info describes a step that is about to run.
func (c *console) Info(format string, args ...interface{}) {
	if !c.verbose {
		return
	}
	color.New(color.FgBlue).Fprintln(c.w, fmt.Sprintf(format, args...))
}

func (c *console) Warning(format string, args ...interface{}) {
	if !c.verbose {
		return
	}
	color.New(color.FgCyan).Fprintln(c.w, fmt.Sprintf(format, args...))
}

// Result prints the final verdict.
func (c *console) Result(changed bool, summary string) {
	if changed {
		color.New(color.FgGreen).Fprintln(c.w, summary)
		return
	}
	color.New(color.FgYellow).Fprintln(c.w, summary)
}
