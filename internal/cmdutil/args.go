package cmdutil

import (
	"fmt"
	"strconv"
)

// ParseSnippetID converts a positional snippet argument to its numeric ID
func ParseSnippetID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid snippet ID %q: expected a positive number", arg)
	}
	return id, nil
}

// TruncateString shortens s to at most max runes, ending with an ellipsis
func TruncateString(s string, max int) string {
	if max <= 3 {
		max = 3
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
