// Package snippet implements the snippet subcommands.
package snippet

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/efrecon/gitlab-snippet/internal/api"
	"github.com/efrecon/gitlab-snippet/internal/cmdutil"
	"github.com/efrecon/gitlab-snippet/internal/iostreams"
)

// requestTimeout bounds every API call made by a subcommand
const requestTimeout = 30 * time.Second

// outputJSON writes v as indented JSON
func outputJSON(streams *iostreams.IOStreams, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(streams.Out, string(data))
	return nil
}

// outputSnippetsTable renders snippets as an aligned table
func outputSnippetsTable(streams *iostreams.IOStreams, snippets []api.Snippet) error {
	w := tabwriter.NewWriter(streams.Out, 0, 0, 2, ' ', 0)

	header := "ID\tTITLE\tFILE\tVISIBILITY\tUPDATED"
	if streams.ColorEnabled() {
		fmt.Fprintln(w, iostreams.Bold+header+iostreams.Reset)
	} else {
		fmt.Fprintln(w, header)
	}

	for _, snippet := range snippets {
		title := cmdutil.TruncateString(snippet.Title, 40)
		if title == "" {
			title = "(untitled)"
		}

		file := snippet.FileName
		if file == "" && len(snippet.Files) > 0 {
			file = snippet.Files[0].Path
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			snippet.ID, title, file, snippet.Visibility, formatTime(snippet.UpdatedAt))
	}

	return w.Flush()
}

// formatTime formats an ISO 8601 timestamp as a relative time or date
func formatTime(isoTime string) string {
	if isoTime == "" {
		return ""
	}

	t, err := time.Parse(time.RFC3339, isoTime)
	if err != nil {
		// Try alternative format
		t, err = time.Parse("2006-01-02T15:04:05.000000-07:00", isoTime)
		if err != nil {
			return isoTime
		}
	}

	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins <= 1 {
			return "just now"
		}
		return fmt.Sprintf("%dm ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "yesterday"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("Jan 2, 2006")
	}
}

// formatTimestamp formats an ISO 8601 timestamp into an absolute form
func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05.999999-07:00", ts)
		if err != nil {
			return ts
		}
	}
	return t.Format("Jan 02, 2006 15:04 MST")
}

// readContent collects snippet content from a file path or, when no path
// is given, from piped stdin. It returns the content and a file name
// suggestion derived from the path.
func readContent(streams *iostreams.IOStreams, path string) (content, filename string, err error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", path, err)
		}
		return string(data), filepath.Base(path), nil
	}

	if streams.IsStdinTTY() {
		return "", "", fmt.Errorf("no content provided: pass a file argument or pipe content to stdin")
	}

	data, err := io.ReadAll(streams.In)
	if err != nil {
		return "", "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	if len(data) == 0 {
		return "", "", fmt.Errorf("no content provided: pass a file argument or pipe content to stdin")
	}
	return string(data), "", nil
}
