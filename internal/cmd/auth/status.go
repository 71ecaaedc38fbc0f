package auth

import (
	"github.com/spf13/cobra"

	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
)

// NewCmdStatus creates the status command
func NewCmdStatus(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show where the private token comes from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(f)
		},
	}

	return cmd
}

func runStatus(f *cmdutil.Factory) error {
	cfg, err := f.Config()
	if err != nil {
		return err
	}

	f.Streams.Info("%s", cfg.Host)
	if cfg.Token == "" {
		f.Streams.Warning("No token configured for %s", cfg.Host)
		f.Streams.Info("  Use --token, set GITLAB_TOKEN, or run 'gitlab-snippet auth login'")
		return nil
	}

	f.Streams.Success("Token configured (source: %s)", cfg.TokenSource)
	return nil
}
