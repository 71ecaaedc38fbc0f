package snippet

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/efrecon/gitlab-snippet/internal/api"
	"github.com/efrecon/gitlab-snippet/internal/iostreams"
)

func testStreams() (*iostreams.IOStreams, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	streams := &iostreams.IOStreams{
		In:     strings.NewReader(""),
		Out:    out,
		ErrOut: errOut,
	}
	return streams, out, errOut
}

func TestFormatTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		time string
		want string
	}{
		{
			name: "empty",
			time: "",
			want: "",
		},
		{
			name: "just now",
			time: now.Add(-30 * time.Second).Format(time.RFC3339),
			want: "just now",
		},
		{
			name: "minutes ago",
			time: now.Add(-10 * time.Minute).Format(time.RFC3339),
			want: "10m ago",
		},
		{
			name: "hours ago",
			time: now.Add(-3 * time.Hour).Format(time.RFC3339),
			want: "3 hours ago",
		},
		{
			name: "yesterday",
			time: now.Add(-30 * time.Hour).Format(time.RFC3339),
			want: "yesterday",
		},
		{
			name: "days ago",
			time: now.Add(-4 * 24 * time.Hour).Format(time.RFC3339),
			want: "4 days ago",
		},
		{
			name: "unparseable passes through",
			time: "not-a-timestamp",
			want: "not-a-timestamp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTime(tt.time); got != tt.want {
				t.Errorf("formatTime(%q) = %q, want %q", tt.time, got, tt.want)
			}
		})
	}
}

func TestFormatTimeOldDate(t *testing.T) {
	got := formatTime("2020-03-15T10:30:00Z")
	if got != "Mar 15, 2020" {
		t.Errorf("formatTime() = %q, want %q", got, "Mar 15, 2020")
	}
}

func TestFormatTimestamp(t *testing.T) {
	got := formatTimestamp("2024-06-01T08:15:00Z")
	if got != "Jun 01, 2024 08:15 UTC" {
		t.Errorf("formatTimestamp() = %q, want %q", got, "Jun 01, 2024 08:15 UTC")
	}

	if got := formatTimestamp("garbage"); got != "garbage" {
		t.Errorf("formatTimestamp() = %q, want pass-through", got)
	}
}

func TestReadContentFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello world\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	streams, _, _ := testStreams()

	content, filename, err := readContent(streams, path)
	if err != nil {
		t.Fatalf("readContent() error = %v", err)
	}
	if content != "hello world\n" {
		t.Errorf("content = %q, want %q", content, "hello world\n")
	}
	if filename != "notes.txt" {
		t.Errorf("filename = %q, want %q", filename, "notes.txt")
	}
}

func TestReadContentFromStdin(t *testing.T) {
	streams, _, _ := testStreams()
	streams.In = strings.NewReader("piped content")

	content, filename, err := readContent(streams, "")
	if err != nil {
		t.Fatalf("readContent() error = %v", err)
	}
	if content != "piped content" {
		t.Errorf("content = %q, want %q", content, "piped content")
	}
	if filename != "" {
		t.Errorf("filename = %q, want empty", filename)
	}
}

func TestReadContentErrors(t *testing.T) {
	streams, _, _ := testStreams()

	if _, _, err := readContent(streams, "/nonexistent/path/file.txt"); err == nil {
		t.Error("expected error for missing file")
	}

	// Empty pipe carries no content
	if _, _, err := readContent(streams, ""); err == nil {
		t.Error("expected error for empty stdin")
	}
}

func TestOutputSnippetsTable(t *testing.T) {
	streams, out, _ := testStreams()

	snippets := []api.Snippet{
		{
			ID:         1,
			Title:      "Deploy helper",
			FileName:   "deploy.sh",
			Visibility: "private",
			UpdatedAt:  "2020-03-15T10:30:00Z",
		},
		{
			ID:         2,
			Visibility: "public",
			Files:      []api.SnippetFile{{Path: "notes/readme.md"}},
		},
	}

	if err := outputSnippetsTable(streams, snippets); err != nil {
		t.Fatalf("outputSnippetsTable() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"ID", "TITLE", "FILE", "VISIBILITY", "UPDATED",
		"Deploy helper", "deploy.sh", "Mar 15, 2020",
		"(untitled)", "notes/readme.md", "public",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestOutputJSON(t *testing.T) {
	streams, out, _ := testStreams()

	snippet := api.Snippet{ID: 42, Title: "Example"}
	if err := outputJSON(streams, snippet); err != nil {
		t.Fatalf("outputJSON() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{fmt.Sprintf("%q: 42", "id"), fmt.Sprintf("%q: %q", "title", "Example")} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON output missing %s:\n%s", want, got)
		}
	}
}
