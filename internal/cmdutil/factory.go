// Package cmdutil provides shared utilities for command implementations.
package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/efrecon/gitlab-snippet/internal/api"
	"github.com/efrecon/gitlab-snippet/internal/config"
	"github.com/efrecon/gitlab-snippet/internal/git"
	"github.com/efrecon/gitlab-snippet/internal/iostreams"
)

// Factory wires the resolved configuration, streams and logger into the
// command implementations. The flag-bound fields are filled by the root
// command before any subcommand runs.
type Factory struct {
	Streams *iostreams.IOStreams
	Logger  *slog.Logger

	// Flag-bound values; empty means unset
	Host    string
	APIRoot string
	Token   string
	Project string

	cfg *config.Config
}

// Config resolves the configuration once and caches it for the lifetime
// of the invocation.
func (f *Factory) Config() (*config.Config, error) {
	if f.cfg != nil {
		return f.cfg, nil
	}

	cfg, err := config.Resolve(config.Overrides{
		Host:    f.Host,
		APIRoot: f.APIRoot,
		Token:   f.Token,
		Project: f.Project,
	})
	if err != nil {
		return nil, err
	}

	f.cfg = cfg
	return cfg, nil
}

// Client creates an API client from the resolved configuration
func (f *Factory) Client() (*api.Client, error) {
	cfg, err := f.Config()
	if err != nil {
		return nil, err
	}

	opts := []api.ClientOption{
		api.WithBaseURL(cfg.APIRoot),
		api.WithLogger(f.Logger),
	}
	if cfg.Token != "" {
		opts = append(opts, api.WithToken(cfg.Token))
	}
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, api.WithTimeout(cfg.HTTPTimeout))
	}

	return api.NewClient(opts...), nil
}

// ResolveProject returns the configured project, falling back to the
// origin remote of the enclosing git repository.
func (f *Factory) ResolveProject() (string, error) {
	cfg, err := f.Config()
	if err != nil {
		return "", err
	}

	if cfg.Project != "" {
		return cfg.Project, nil
	}

	project, err := git.DetectProject(".", cfg.Host)
	if err != nil {
		return "", fmt.Errorf("project is required: use --project/-p, set %s, or run inside a clone of the project (%w)", config.EnvProject, err)
	}

	f.Logger.Debug("detected project from origin remote", "project", project)
	return project, nil
}
