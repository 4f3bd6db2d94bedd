package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/masmgr/pathchanged/config"
	"github.com/masmgr/pathchanged/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "pathchanged",
		Usage:     "Report whether files under a path changed between two commits",
		UsageText: "pathchanged --path DIR [--before REF] [--after REF] [--output FILE]",
		Version:   "1.0.0",
		Flags:     checkFlags(),
		Action:    checkAction,
		ErrWriter: os.Stderr,
	}
}

func checkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "path",
			Aliases: []string{"p"},
			Usage:   "Path prefix to watch (literal, relative to the repository root)",
			EnvVars: []string{"INPUT_PATH"},
		},
		&cli.StringFlag{
			Name:    "before",
			Usage:   "Left end of the comparison (default: the event's previous commit)",
			EnvVars: []string{"INPUT_BEFORE"},
		},
		&cli.StringFlag{
			Name:    "after",
			Usage:   "Right end of the comparison (default: GITHUB_SHA, then HEAD)",
			EnvVars: []string{"INPUT_AFTER"},
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			EnvVars: []string{"INPUT_REPO", "GITHUB_WORKSPACE"},
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "File the result is appended to, or - for stdout",
			EnvVars: []string{"GITHUB_OUTPUT"},
		},
		&cli.StringFlag{
			Name:    "name",
			Usage:   "Output key (default: from config or 'changed')",
			EnvVars: []string{"INPUT_NAME"},
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (github, json)",
			EnvVars: []string{"INPUT_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "backend",
			Usage:   "How changed paths are listed (cli, go-git)",
			EnvVars: []string{"INPUT_BACKEND"},
		},
		&cli.StringSliceFlag{
			Name:    "exclude",
			Usage:   "Glob patterns to ignore (repeatable; comma or newline separated)",
			EnvVars: []string{"INPUT_EXCLUDE"},
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			EnvVars: []string{"INPUT_CONFIG"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "Print diagnostics to stderr",
			EnvVars: []string{"RUNNER_DEBUG"},
		},
	}
}

// loadConfig loads configuration from file or defaults and applies CLI
// overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"), c.String("repo"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if excludes := splitPatterns(c.StringSlice("exclude")); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if backend := c.String("backend"); backend != "" {
		cfg.Git.Backend = backend
	}
	if format := c.String("format"); format != "" {
		cfg.Output.Format = format
	}
	if name := c.String("name"); name != "" {
		cfg.Output.Name = name
	}

	return cfg, nil
}

// outputOptions creates OutputOptions from CLI flags and configuration.
func outputOptions(c *cli.Context, cfg *config.Config) (output.OutputOptions, error) {
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return output.OutputOptions{}, err
	}
	path := strings.TrimSpace(c.String("output"))
	ghOutput := strings.TrimSpace(os.Getenv("GITHUB_OUTPUT"))
	return output.OutputOptions{
		Format:       format,
		OutputPath:   path,
		Name:         cfg.Output.Name,
		GitHubOutput: path != output.StdoutPath && path != "" && path == ghOutput,
	}, nil
}

// splitPatterns splits entries on newlines as well. urfave/cli only splits
// slice env vars on commas, and multi-line action inputs arrive as a single
// entry.
func splitPatterns(entries []string) []string {
	var patterns []string
	for _, entry := range entries {
		for _, line := range strings.Split(entry, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				patterns = append(patterns, line)
			}
		}
	}
	return patterns
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
