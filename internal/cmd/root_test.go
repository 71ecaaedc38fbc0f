package cmd

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/efrecon/gitlab-snippet/internal/api"
)

func TestCommandAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"ls", "list"},
		{"read", "get"},
		{"view", "details"},
		{"find", "search"},
		{"add", "create"},
		{"change", "update"},
		{"remove", "delete"},
		{"rm", "delete"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.alias})
			if err != nil {
				t.Fatalf("Find(%q) error = %v", tt.alias, err)
			}
			if cmd.Name() != tt.want {
				t.Errorf("Find(%q) = %q, want %q", tt.alias, cmd.Name(), tt.want)
			}
		})
	}
}

func TestCommandLookupIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"LIST", "list"},
		{"Get", "get"},
		{"Details", "details"},
		{"DELETE", "delete"},
		{"Search", "search"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.arg})
			if err != nil {
				t.Fatalf("Find(%q) error = %v", tt.arg, err)
			}
			if cmd.Name() != tt.want {
				t.Errorf("Find(%q) = %q, want %q", tt.arg, cmd.Name(), tt.want)
			}
		})
	}
}

func TestUnknownCommandFails(t *testing.T) {
	rootCmd.SetArgs([]string{"frobnicate"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("error = %q, want unknown command", err)
	}
}

func TestBareInvocationListsSnippets(t *testing.T) {
	// The root command runs list itself rather than printing usage
	if rootCmd.RunE == nil {
		t.Fatal("root command has no run function")
	}

	if err := rootCmd.Args(rootCmd, []string{"extra"}); err == nil {
		t.Error("expected positional arguments to be rejected")
	}
}

func TestHelpExitsCleanly(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})
	t.Cleanup(func() {
		rootCmd.SetOut(factory.Streams.ErrOut)
		rootCmd.SetErr(factory.Streams.ErrOut)
		rootCmd.SetArgs(nil)
		if f := rootCmd.Flags().Lookup("help"); f != nil {
			f.Value.Set("false")
		}
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("--help error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"command-line client for the snippets",
		"--gitlab", "--root", "--token", "--project",
		"--verbose", "--non-interactive", "--no-color",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("help output missing %q", want)
		}
	}

	if strings.Contains(got, "--no-colour") {
		t.Error("hidden --no-colour alias should not appear in help")
	}
}

func TestVerbosityLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, api.LevelTrace},
		{7, api.LevelTrace},
	}

	for _, tt := range tests {
		if got := verbosityLevel(tt.verbosity); got != tt.want {
			t.Errorf("verbosityLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}
