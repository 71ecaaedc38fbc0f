package snippet

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
)

// GetOptions holds the options for the get command
type GetOptions struct {
	Factory   *cmdutil.Factory
	SnippetID string
}

// NewCmdGet creates the get command
func NewCmdGet(f *cmdutil.Factory) *cobra.Command {
	opts := &GetOptions{Factory: f}

	cmd := &cobra.Command{
		Use:   "get <snippet-id>",
		Short: "Print the raw content of a snippet",
		Long: heredoc.Doc(`
			Print the raw content of a snippet to standard output,
			exactly as stored.`),
		Example: heredoc.Doc(`
			# Print snippet 42
			gitlab-snippet get 42

			# Save it to a file
			gitlab-snippet get 42 > backup.sh`),
		Aliases: []string{"read"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SnippetID = args[0]
			return runGet(cmd.Context(), opts)
		},
	}

	return cmd
}

func runGet(ctx context.Context, opts *GetOptions) error {
	id, err := cmdutil.ParseSnippetID(opts.SnippetID)
	if err != nil {
		return err
	}

	project, err := opts.Factory.ResolveProject()
	if err != nil {
		return err
	}

	client, err := opts.Factory.Client()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	content, err := client.GetSnippetRaw(ctx, project, id)
	if err != nil {
		return fmt.Errorf("failed to get snippet: %w", err)
	}

	// Raw passthrough: no trailing newline is added
	if _, err := opts.Factory.Streams.Out.Write(content); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}

	return nil
}
