package snippet

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/efrecon/gitlab-snippet/internal/api"
	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
	"github.com/efrecon/gitlab-snippet/internal/iostreams"
)

// DetailsOptions holds the options for the details command
type DetailsOptions struct {
	Factory   *cmdutil.Factory
	SnippetID string
	JSON      bool
}

// NewCmdDetails creates the details command
func NewCmdDetails(f *cmdutil.Factory) *cobra.Command {
	opts := &DetailsOptions{Factory: f}

	cmd := &cobra.Command{
		Use:   "details <snippet-id>",
		Short: "Show a snippet's metadata",
		Long: heredoc.Doc(`
			Show the metadata of a snippet: title, visibility, author,
			timestamps and files.`),
		Example: heredoc.Doc(`
			# Show snippet 42
			gitlab-snippet details 42

			# Pretty-printed JSON
			gitlab-snippet details 42 --json`),
		Aliases: []string{"view"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SnippetID = args[0]
			return runDetails(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

func runDetails(ctx context.Context, opts *DetailsOptions) error {
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

	snippet, err := client.GetSnippet(ctx, project, id)
	if err != nil {
		return fmt.Errorf("failed to get snippet: %w", err)
	}

	if opts.JSON {
		return outputJSON(opts.Factory.Streams, snippet)
	}

	return outputSnippetDetails(opts.Factory.Streams, snippet)
}

func outputSnippetDetails(streams *iostreams.IOStreams, snippet *api.Snippet) error {
	if snippet.Title != "" {
		fmt.Fprintf(streams.Out, "%s\n", snippet.Title)
	} else {
		fmt.Fprintf(streams.Out, "(untitled snippet)\n")
	}
	fmt.Fprintf(streams.Out, "ID: %d\n\n", snippet.ID)

	fmt.Fprintf(streams.Out, "Visibility:  %s\n", snippet.Visibility)

	if snippet.Author != nil {
		name := snippet.Author.Name
		if name == "" {
			name = snippet.Author.Username
		}
		if name != "" {
			fmt.Fprintf(streams.Out, "Author:      %s\n", name)
		}
	}

	if snippet.Description != "" {
		fmt.Fprintf(streams.Out, "Description: %s\n", snippet.Description)
	}

	if snippet.CreatedAt != "" {
		fmt.Fprintf(streams.Out, "Created:     %s\n", formatTimestamp(snippet.CreatedAt))
	}
	if snippet.UpdatedAt != "" {
		fmt.Fprintf(streams.Out, "Updated:     %s\n", formatTimestamp(snippet.UpdatedAt))
	}

	if len(snippet.Files) > 0 {
		fmt.Fprintln(streams.Out)
		fmt.Fprintln(streams.Out, "Files:")
		for _, file := range snippet.Files {
			fmt.Fprintf(streams.Out, "  %s\n", file.Path)
		}
	} else if snippet.FileName != "" {
		fmt.Fprintln(streams.Out)
		fmt.Fprintln(streams.Out, "Files:")
		fmt.Fprintf(streams.Out, "  %s\n", snippet.FileName)
	}

	if snippet.WebURL != "" {
		fmt.Fprintln(streams.Out)
		fmt.Fprintf(streams.Out, "View in browser: %s\n", snippet.WebURL)
	}

	return nil
}
