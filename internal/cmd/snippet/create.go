package snippet

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/efrecon/gitlab-snippet/internal/api"
	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
)

// CreateOptions holds the options for the create command
type CreateOptions struct {
	Factory     *cmdutil.Factory
	File        string // positional path; empty means stdin
	Title       string
	FileName    string
	Description string
	Visibility  string
	JSON        bool
}

// NewCmdCreate creates the create command
func NewCmdCreate(f *cmdutil.Factory) *cobra.Command {
	opts := &CreateOptions{Factory: f}

	cmd := &cobra.Command{
		Use:   "create [file]",
		Short: "Create a new snippet",
		Long: heredoc.Doc(`
			Create a new snippet in a project from a file or from
			standard input.`),
		Example: heredoc.Doc(`
			# Create a snippet from a file
			gitlab-snippet create --title "Backup helper" backup.sh

			# Create from stdin
			echo "print('hello')" | gitlab-snippet create --title "Hello" --filename hello.py

			# Create a public snippet
			gitlab-snippet create --title "FAQ" --visibility public faq.md`),
		Aliases: []string{"add"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.File = args[0]
			}
			return runCreate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Snippet title (required)")
	cmd.Flags().StringVar(&opts.FileName, "filename", "", "File name of the snippet (defaults to the file argument)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Snippet description")
	cmd.Flags().StringVar(&opts.Visibility, "visibility", "private", "Snippet visibility: private, internal, public")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	cmd.MarkFlagRequired("title")

	return cmd
}

var validVisibilities = map[string]bool{
	"private":  true,
	"internal": true,
	"public":   true,
}

func runCreate(ctx context.Context, opts *CreateOptions) error {
	if !validVisibilities[opts.Visibility] {
		return fmt.Errorf("invalid visibility %q: must be one of private, internal, public", opts.Visibility)
	}

	content, filename, err := readContent(opts.Factory.Streams, opts.File)
	if err != nil {
		return err
	}
	if opts.FileName != "" {
		filename = opts.FileName
	}
	if filename == "" {
		filename = "snippet.txt"
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

	snippet, err := client.CreateSnippet(ctx, project, &api.SnippetCreateOptions{
		Title:       opts.Title,
		FileName:    filename,
		Content:     content,
		Description: opts.Description,
		Visibility:  opts.Visibility,
	})
	if err != nil {
		return fmt.Errorf("failed to create snippet: %w", err)
	}

	if opts.JSON {
		return outputJSON(opts.Factory.Streams, snippet)
	}

	opts.Factory.Streams.Success("Created snippet %d in project %s", snippet.ID, project)
	if snippet.WebURL != "" {
		fmt.Fprintf(opts.Factory.Streams.Out, "URL: %s\n", snippet.WebURL)
	}

	return nil
}
