package cmd

import (
	"fmt"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/efrecon/gitlab-snippet/internal/api"
	"github.com/efrecon/gitlab-snippet/internal/cmd/auth"
	"github.com/efrecon/gitlab-snippet/internal/cmd/snippet"
	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
	"github.com/efrecon/gitlab-snippet/internal/iostreams"
)

var (
	// Version is set at build time
	Version = "dev"

	// BuildDate is set at build time
	BuildDate = "unknown"
)

var (
	factory *cmdutil.Factory

	verbosity      int
	nonInteractive bool
	noColor        bool
	noColour       bool
)

// rootCmd represents the base command; invoked bare it behaves as list
var rootCmd = &cobra.Command{
	Use:   "gitlab-snippet <command>",
	Short: "Manage GitLab project snippets from the command line",
	Long: heredoc.Doc(`
		gitlab-snippet is a command-line client for the snippets of a
		GitLab project.

		The host, API root, private token and project can each be given
		as a flag, through the GITLAB_HOST, GITLAB_ROOT, GITLAB_TOKEN and
		GITLAB_PROJECT environment variables, or through the config file.
		When no project is configured, the origin remote of the enclosing
		repository is used.`),
	Example: heredoc.Doc(`
		# List the snippets of a project
		gitlab-snippet -p group/proj list

		# Print the raw content of snippet 42
		gitlab-snippet -p 12345 get 42

		# Create a snippet from a file
		gitlab-snippet create --title "Backup helper" backup.sh`),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || noColour {
			factory.Streams.SetColorEnabled(false)
		}
		factory.Streams.SetNonInteractive(nonInteractive)

		factory.Logger = slog.New(slog.NewTextHandler(factory.Streams.ErrOut, &slog.HandlerOptions{
			Level: verbosityLevel(verbosity),
		}))
		slog.SetDefault(factory.Logger)
	},
}

// verbosityLevel maps the -v count to a log level
func verbosityLevel(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return api.LevelTrace
	}
}

// Execute runs the root command and reports any error to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		factory.Streams.Error("%s", err)
		fmt.Fprintln(factory.Streams.ErrOut, "Run 'gitlab-snippet --help' for usage.")
	}
	return err
}

func init() {
	cobra.EnableCaseInsensitive = true

	factory = &cmdutil.Factory{
		Streams: iostreams.New(),
		Logger:  slog.Default(),
	}

	// Usage and help go to stderr; stdout carries API output only
	rootCmd.SetOut(factory.Streams.ErrOut)
	rootCmd.SetErr(factory.Streams.ErrOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&factory.Host, "gitlab", "g", "", "GitLab host (default gitlab.com)")
	pf.StringVarP(&factory.APIRoot, "root", "r", "", "API root URL (default https://HOST/api/v4)")
	pf.StringVarP(&factory.Token, "token", "t", "", "Private token used to authenticate")
	pf.StringVarP(&factory.Project, "project", "p", "", "Project ID or namespace/project path")
	pf.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (repeat for debug and trace output)")
	pf.BoolVar(&nonInteractive, "non-interactive", false, "Never prompt for input")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&noColour, "no-colour", false, "Disable colored output")
	pf.MarkHidden("no-colour")

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of gitlab-snippet",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(factory.Streams.Out, "gitlab-snippet version %s (%s)\n", Version, BuildDate)
		},
	})

	listCmd := snippet.NewCmdList(factory)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(snippet.NewCmdGet(factory))
	rootCmd.AddCommand(snippet.NewCmdDetails(factory))
	rootCmd.AddCommand(snippet.NewCmdSearch(factory))
	rootCmd.AddCommand(snippet.NewCmdCreate(factory))
	rootCmd.AddCommand(snippet.NewCmdUpdate(factory))
	rootCmd.AddCommand(snippet.NewCmdDelete(factory))
	rootCmd.AddCommand(auth.NewCmdAuth(factory))

	// A bare invocation lists snippets; anything unrecognized is an
	// unknown command error
	rootCmd.RunE = listCmd.RunE
	rootCmd.Args = cobra.NoArgs
}
