package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
	"github.com/efrecon/gitlab-snippet/internal/config"
)

// NewCmdLogout creates the logout command
func NewCmdLogout(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored private token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(f)
		},
	}

	return cmd
}

func runLogout(f *cmdutil.Factory) error {
	cfg, err := f.Config()
	if err != nil {
		return err
	}

	if !config.HasToken(cfg.Host) {
		f.Streams.Info("No token stored for %s", cfg.Host)
		return nil
	}

	if err := config.DeleteToken(cfg.Host); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}

	f.Streams.Success("Removed token for %s", cfg.Host)
	return nil
}
