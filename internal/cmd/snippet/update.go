package snippet

import (
	"context"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/efrecon/gitlab-snippet/internal/api"
	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
)

// UpdateOptions holds the options for the update command
type UpdateOptions struct {
	Factory     *cmdutil.Factory
	SnippetID   string
	File        string // positional path; empty means stdin when piped
	Title       string
	FileName    string
	Description string
	Visibility  string
	JSON        bool
}

// NewCmdUpdate creates the update command
func NewCmdUpdate(f *cmdutil.Factory) *cobra.Command {
	opts := &UpdateOptions{Factory: f}

	cmd := &cobra.Command{
		Use:   "update <snippet-id> [file]",
		Short: "Update an existing snippet",
		Long: heredoc.Doc(`
			Update the fields of a snippet. Only the fields that are
			given change; new content comes from a file argument or
			piped standard input.`),
		Example: heredoc.Doc(`
			# Replace the content of snippet 42
			gitlab-snippet update 42 backup.sh

			# Rename it without touching the content
			gitlab-snippet update 42 --title "Nightly backup"

			# Make it public
			gitlab-snippet update 42 --visibility public`),
		Aliases: []string{"change"},
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SnippetID = args[0]
			if len(args) > 1 {
				opts.File = args[1]
			}
			return runUpdate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New snippet title")
	cmd.Flags().StringVar(&opts.FileName, "filename", "", "New file name")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "New snippet description")
	cmd.Flags().StringVar(&opts.Visibility, "visibility", "", "New visibility: private, internal, public")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

func runUpdate(ctx context.Context, opts *UpdateOptions) error {
	id, err := cmdutil.ParseSnippetID(opts.SnippetID)
	if err != nil {
		return err
	}

	if opts.Visibility != "" && !validVisibilities[opts.Visibility] {
		return fmt.Errorf("invalid visibility %q: must be one of private, internal, public", opts.Visibility)
	}

	update := &api.SnippetUpdateOptions{
		Title:       opts.Title,
		FileName:    opts.FileName,
		Description: opts.Description,
		Visibility:  opts.Visibility,
	}

	// Content is only read when a file argument is given or stdin is
	// piped; a bare metadata update must not block on the terminal.
	if opts.File != "" {
		content, _, err := readContent(opts.Factory.Streams, opts.File)
		if err != nil {
			return err
		}
		update.Content = content
	} else if !opts.Factory.Streams.IsStdinTTY() {
		data, err := io.ReadAll(opts.Factory.Streams.In)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		// An empty pipe means a metadata-only update
		update.Content = string(data)
	}

	if *update == (api.SnippetUpdateOptions{}) {
		return fmt.Errorf("nothing to update: give new content or one of --title, --filename, --description, --visibility")
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

	snippet, err := client.UpdateSnippet(ctx, project, id, update)
	if err != nil {
		return fmt.Errorf("failed to update snippet: %w", err)
	}

	if opts.JSON {
		return outputJSON(opts.Factory.Streams, snippet)
	}

	opts.Factory.Streams.Success("Updated snippet %d", snippet.ID)
	return nil
}
