package snippet

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
)

// DeleteOptions holds the options for the delete command
type DeleteOptions struct {
	Factory   *cmdutil.Factory
	SnippetID string
	Force     bool
}

// NewCmdDelete creates the delete command
func NewCmdDelete(f *cmdutil.Factory) *cobra.Command {
	opts := &DeleteOptions{Factory: f}

	cmd := &cobra.Command{
		Use:   "delete <snippet-id>",
		Short: "Delete a snippet",
		Long: heredoc.Doc(`
			Delete a snippet from a project.

			On a terminal you are asked to confirm; use --force to skip
			the prompt, which is required in non-interactive runs.`),
		Example: heredoc.Doc(`
			# Delete with confirmation
			gitlab-snippet delete 42

			# Delete without confirmation
			gitlab-snippet delete 42 --force`),
		Aliases: []string{"remove", "rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SnippetID = args[0]
			return runDelete(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runDelete(ctx context.Context, opts *DeleteOptions) error {
	id, err := cmdutil.ParseSnippetID(opts.SnippetID)
	if err != nil {
		return err
	}

	project, err := opts.Factory.ResolveProject()
	if err != nil {
		return err
	}

	if !opts.Force {
		if !opts.Factory.Streams.Interactive() {
			return fmt.Errorf("cannot confirm deletion in non-interactive mode: use --force to skip confirmation")
		}

		fmt.Fprintf(opts.Factory.Streams.Out, "Delete snippet %d from %s? [y/N]: ", id, project)

		reader := bufio.NewReader(opts.Factory.Streams.In)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			opts.Factory.Streams.Info("Deletion cancelled")
			return nil
		}
	}

	client, err := opts.Factory.Client()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if err := client.DeleteSnippet(ctx, project, id); err != nil {
		return fmt.Errorf("failed to delete snippet: %w", err)
	}

	opts.Factory.Streams.Success("Deleted snippet %d", id)
	return nil
}
