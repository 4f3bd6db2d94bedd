package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/masmgr/pathchanged/internal/check"
	"github.com/masmgr/pathchanged/internal/event"
	"github.com/masmgr/pathchanged/internal/git"
	"github.com/masmgr/pathchanged/internal/output"
	"github.com/urfave/cli/v2"
)

func checkAction(c *cli.Context) error {
	con := newConsole(c.App.ErrWriter, c.Bool("verbose"))

	watch := strings.TrimSpace(c.String("path"))
	if watch == "" {
		return errors.New("INPUT_PATH is required (--path)")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	opts, err := outputOptions(c, cfg)
	if err != nil {
		return err
	}
	// Nowhere to publish the result: fail before running git.
	if err := output.CheckDestination(opts.OutputPath); err != nil {
		return err
	}

	backend, err := git.ParseBackend(cfg.Git.Backend)
	if err != nil {
		return err
	}

	before := firstNonEmpty(c.String("before"))
	after := firstNonEmpty(c.String("after"))
	// The event payload is only consulted for refs not given explicitly.
	if before == "" || after == "" {
		defaults, err := event.LoadDefaults()
		if err != nil {
			return err
		}
		before = firstNonEmpty(before, defaults.Before)
		after = firstNonEmpty(after, defaults.After)
	}
	after = firstNonEmpty(after, git.DefaultAfterRef)

	repoPath := c.String("repo")

	req, err := check.NewRequest(repoPath, before, after, watch, cfg.Filters.Exclude)
	if err != nil {
		return err
	}

	if git.IsNullRef(req.Before) {
		con.Warning("No previous commit; every file in %s counts as changed", req.After)
	}
	con.Info("Listing changes in %s between %s and %s (%s backend)", req.RepoPath, displayRef(req.Before), req.After, backend)

	lister, err := git.NewChangeLister(backend, req.RepoPath)
	if err != nil {
		return fmt.Errorf("unable to determine change status: %w", err)
	}

	result, err := check.NewChecker(lister).Check(c.Context, req)
	if err != nil {
		return fmt.Errorf("unable to determine change status: %w", err)
	}

	con.Result(result.Changed, result.String())

	writer := output.NewResultWriter(opts.Format)
	return writer.Write(result, opts)
}

func displayRef(ref string) string {
	if git.IsNullRef(ref) {
		return "(none)"
	}
	return ref
}
