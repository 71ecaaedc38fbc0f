package api

import (
	"net/url"
	"testing"
)

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"group/proj",
		"group/sub group/proj",
		"plain",
		"UPPER.lower-123_~",
		"a+b&c=d?e#f",
		"ünïcödé/päth",
		"100%",
		"",
	}

	for _, in := range inputs {
		escaped := Escape(in)

		decoded, err := url.PathUnescape(escaped)
		if err != nil {
			t.Errorf("Escape(%q) = %q: not decodable: %v", in, escaped, err)
			continue
		}
		if decoded != in {
			t.Errorf("round trip of %q: got %q via %q", in, decoded, escaped)
		}
	}
}

func TestEscapeUnreservedUntouched(t *testing.T) {
	const safe = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_.~"

	if got := Escape(safe); got != safe {
		t.Errorf("Escape(%q) = %q, expected unreserved characters to pass through", safe, got)
	}

	// Escaping is stable for already-safe strings only; a reserved byte
	// must be encoded every time.
	if got := Escape("/"); got != "%2F" {
		t.Errorf("Escape(\"/\") = %q, expected %q", got, "%2F")
	}
	if got := Escape(" "); got != "%20" {
		t.Errorf("Escape(\" \") = %q, expected %q", got, "%20")
	}
}

func TestEncodeProject(t *testing.T) {
	tests := []struct {
		name    string
		project string
		want    string
	}{
		{name: "numeric ID passes through", project: "12345", want: "12345"},
		{name: "namespaced path is encoded", project: "group/proj", want: "group%2Fproj"},
		{name: "nested namespace", project: "group/sub/proj", want: "group%2Fsub%2Fproj"},
		{name: "non-numeric without reserved characters", project: "proj2", want: "proj2"},
		{name: "dots and dashes survive", project: "my-group/my.proj", want: "my-group%2Fmy.proj"},
		{name: "empty stays empty", project: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeProject(tt.project); got != tt.want {
				t.Errorf("EncodeProject(%q) = %q, want %q", tt.project, got, tt.want)
			}
		})
	}
}
