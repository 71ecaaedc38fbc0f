package snippet

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/efrecon/gitlab-snippet/internal/api"
	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
)

// SearchOptions holds the options for the search command
type SearchOptions struct {
	Factory *cmdutil.Factory
	Query   string
	Limit   int
	JSON    bool
}

// NewCmdSearch creates the search command
func NewCmdSearch(f *cmdutil.Factory) *cobra.Command {
	opts := &SearchOptions{Factory: f}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search snippets in a project",
		Long: heredoc.Doc(`
			Search the snippets of a project by title and file name.

			The query is matched server side.`),
		Example: heredoc.Doc(`
			# Find snippets mentioning "backup"
			gitlab-snippet search backup`),
		Aliases: []string{"find"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Query = args[0]
			return runSearch(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 20, "Maximum number of snippets to list")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

func runSearch(ctx context.Context, opts *SearchOptions) error {
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
		Search:  opts.Query,
		PerPage: opts.Limit,
	})
	if err != nil {
		return fmt.Errorf("failed to search snippets: %w", err)
	}

	if len(snippets) == 0 {
		opts.Factory.Streams.Info("No snippets matching %q in project %s", opts.Query, project)
		return nil
	}

	if opts.JSON {
		return outputJSON(opts.Factory.Streams, snippets)
	}

	return outputSnippetsTable(opts.Factory.Streams, snippets)
}
