package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientTokenHeader(t *testing.T) {
	var receivedReq *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedReq = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithToken("secret-token"))

	if _, err := client.Get(context.Background(), "/projects/1/snippets", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := receivedReq.Header.Get(TokenHeader); got != "secret-token" {
		t.Errorf("expected %s header %q, got %q", TokenHeader, "secret-token", got)
	}

	if got := receivedReq.Header.Get("User-Agent"); got != UserAgent {
		t.Errorf("expected User-Agent %q, got %q", UserAgent, got)
	}
}

func TestClientNoTokenNoHeader(t *testing.T) {
	var receivedReq *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedReq = r
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	if _, err := client.Get(context.Background(), "/projects/1/snippets", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := receivedReq.Header[http.CanonicalHeaderKey(TokenHeader)]; ok {
		t.Errorf("expected no %s header without a token", TokenHeader)
	}
}

func TestClientPathNormalization(t *testing.T) {
	var receivedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	// Trailing slash on the base URL and leading slash on the path must
	// collapse into a single separator.
	client := NewClient(WithBaseURL(server.URL + "/api/v4/"))

	if _, err := client.Get(context.Background(), "/projects/1/snippets", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if receivedPath != "/api/v4/projects/1/snippets" {
		t.Errorf("expected path %q, got %q", "/api/v4/projects/1/snippets", receivedPath)
	}
}

func TestParseAPIError(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		response    string
		wantMessage string
	}{
		{
			name:        "string message",
			statusCode:  http.StatusNotFound,
			response:    `{"message": "404 Snippet Not Found"}`,
			wantMessage: "404 Snippet Not Found",
		},
		{
			name:        "error field",
			statusCode:  http.StatusUnauthorized,
			response:    `{"error": "invalid_token"}`,
			wantMessage: "invalid_token",
		},
		{
			name:        "object message is kept verbatim",
			statusCode:  http.StatusBadRequest,
			response:    `{"message": {"title": ["can't be blank"]}}`,
			wantMessage: `{"title": ["can't be blank"]}`,
		},
		{
			name:        "unparseable body falls back to status text",
			statusCode:  http.StatusInternalServerError,
			response:    `<html>boom</html>`,
			wantMessage: "Internal Server Error",
		},
		{
			name:        "empty body falls back to status text",
			statusCode:  http.StatusForbidden,
			response:    "",
			wantMessage: "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := NewClient(WithBaseURL(server.URL), WithToken("test-token"))

			_, err := client.Get(context.Background(), "/projects/1/snippets/1", nil)
			if err == nil {
				t.Fatal("expected error but got nil")
			}

			apiErr, ok := err.(*APIError)
			if !ok {
				t.Fatalf("expected error to be *APIError, got %T", err)
			}

			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("expected status code %d, got %d", tt.statusCode, apiErr.StatusCode)
			}

			if apiErr.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, apiErr.Message)
			}
		})
	}
}
