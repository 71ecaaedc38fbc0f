package snippet

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/efrecon/gitlab-snippet/internal/api"
	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
)

// ListOptions holds the options for the list command
type ListOptions struct {
	Factory *cmdutil.Factory
	Limit   int
	Page    int
	JSON    bool
}

// NewCmdList creates the list command
func NewCmdList(f *cmdutil.Factory) *cobra.Command {
	opts := &ListOptions{Factory: f}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snippets in a project",
		Long: heredoc.Doc(`
			List the snippets of a project.

			The project is taken from --project, the GITLAB_PROJECT environment
			variable, or the origin remote of the enclosing repository.`),
		Example: heredoc.Doc(`
			# List snippets in the current project
			gitlab-snippet list

			# List snippets in an explicit project
			gitlab-snippet -p group/proj list

			# Output as JSON
			gitlab-snippet list --json`),
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 20, "Maximum number of snippets to list")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "Result page to fetch")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

func runList(ctx context.Context, opts *ListOptions) error {
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

	snippets, err := client.ListSnippets(ctx, project, &api.SnippetListOptions{
		Page:    opts.Page,
		PerPage: opts.Limit,
	})
	if err != nil {
		return fmt.Errorf("failed to list snippets: %w", err)
	}

	if len(snippets) == 0 {
		opts.Factory.Streams.Info("No snippets found in project %s", project)
		return nil
	}

	if opts.JSON {
		return outputJSON(opts.Factory.Streams, snippets)
	}

	return outputSnippetsTable(opts.Factory.Streams, snippets)
}
