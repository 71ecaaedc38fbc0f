package cmdutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSnippetID(t *testing.T) {
	id, err := ParseSnippetID("42")
	require.NoError(t, err)
	require.Equal(t, 42, id)

	for _, bad := range []string{"", "abc", "-1", "0", "1.5", "1a"} {
		_, err := ParseSnippetID(bad)
		require.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestTruncateString(t *testing.T) {
	require.Equal(t, "short", TruncateString("short", 10))
	require.Equal(t, "exactly10!", TruncateString("exactly10!", 10))
	require.Equal(t, "a long ...", TruncateString("a long title that keeps going", 10))
	require.Equal(t, "...", TruncateString("abcd", 1))
}
