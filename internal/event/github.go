// Package event resolves default refs from the CI environment.
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Environment variables read from the runner.
const (
	EnvEventPath = "GITHUB_EVENT_PATH"
	EnvSHA       = "GITHUB_SHA"
)

// Defaults holds the refs to fall back on when none are supplied.
type Defaults struct {
	Before string
	After  string
}

// payload covers the push and pull_request event fields we read.
type payload struct {
	Before      string `json:"before"`
	After       string `json:"after"`
	PullRequest *struct {
		Base struct {
			SHA string `json:"sha"`
		} `json:"base"`
		Head struct {
			SHA string `json:"sha"`
		} `json:"head"`
	} `json:"pull_request"`
}

// LoadDefaults reads defaults using os.Getenv.
func LoadDefaults() (Defaults, error) {
	return LoadDefaultsFrom(os.Getenv)
}

// LoadDefaultsFrom reads defaults using the given environment lookup.
// A missing event file is not an error; a malformed one is.
func LoadDefaultsFrom(getenv func(string) string) (Defaults, error) {
	var d Defaults

	if path := strings.TrimSpace(getenv(EnvEventPath)); path != "" {
		p, err := readPayload(path)
		if err != nil {
			return Defaults{}, err
		}
		if p != nil {
			if p.PullRequest != nil {
				d.Before = p.PullRequest.Base.SHA
				d.After = p.PullRequest.Head.SHA
			} else {
				d.Before = p.Before
				d.After = p.After
			}
		}
	}

	// The checked-out commit wins over the payload.
	if sha := strings.TrimSpace(getenv(EnvSHA)); sha != "" {
		d.After = sha
	}

	return d, nil
}

func readPayload(path string) (*payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read event payload: %w", err)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse event payload %s: %w", path, err)
	}
	return &p, nil
}
