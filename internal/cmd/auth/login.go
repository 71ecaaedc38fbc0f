package auth

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
	"github.com/efrecon/gitlab-snippet/internal/config"
)

type loginOptions struct {
	factory   *cmdutil.Factory
	withToken bool
}

// NewCmdLogin creates the login command
func NewCmdLogin(f *cmdutil.Factory) *cobra.Command {
	opts := &loginOptions{factory: f}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a private token in the system keyring",
		Long: heredoc.Doc(`
			Store a private token for the configured host in the system
			keyring. Later invocations pick it up automatically when
			neither --token nor GITLAB_TOKEN is set.`),
		Example: heredoc.Doc(`
			# Prompt for a token
			gitlab-snippet auth login

			# Read the token from stdin (for scripts)
			echo "$TOKEN" | gitlab-snippet auth login --with-token

			# Store a token for a self-hosted instance
			gitlab-snippet -g gitlab.example.com auth login`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.withToken, "with-token", false, "Read token from stdin")

	return cmd
}

func runLogin(opts *loginOptions) error {
	cfg, err := opts.factory.Config()
	if err != nil {
		return err
	}

	streams := opts.factory.Streams

	var token string
	switch {
	case opts.withToken || !streams.IsStdinTTY():
		data, err := io.ReadAll(streams.In)
		if err != nil {
			return fmt.Errorf("failed to read token from stdin: %w", err)
		}
		token = strings.TrimSpace(string(data))
	case streams.Interactive():
		fmt.Fprintf(streams.Out, "Paste your private token for %s: ", cfg.Host)
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(streams.Out)
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	default:
		return fmt.Errorf("cannot prompt for a token in non-interactive mode: use --with-token")
	}

	if token == "" {
		return fmt.Errorf("no token provided")
	}

	if err := config.SetToken(cfg.Host, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	streams.Success("Stored token for %s", cfg.Host)
	return nil
}
