// Package auth implements token storage commands.
package auth

import (
	"github.com/spf13/cobra"

	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
)

// NewCmdAuth creates the auth command and its subcommands
func NewCmdAuth(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth <command>",
		Short: "Manage the stored private token",
	}

	cmd.AddCommand(NewCmdLogin(f))
	cmd.AddCommand(NewCmdLogout(f))
	cmd.AddCommand(NewCmdStatus(f))

	return cmd
}
