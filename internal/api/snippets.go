package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Author represents the user that owns a snippet
type Author struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	State    string `json:"state"`
	WebURL   string `json:"web_url"`
}

// SnippetFile represents a file in a multi-file snippet
type SnippetFile struct {
	Path   string `json:"path"`
	RawURL string `json:"raw_url"`
}

// Snippet represents a GitLab project snippet
type Snippet struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	FileName    string        `json:"file_name"`
	Description string        `json:"description"`
	Visibility  string        `json:"visibility"`
	Author      *Author       `json:"author"`
	ProjectID   int           `json:"project_id"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	WebURL      string        `json:"web_url"`
	RawURL      string        `json:"raw_url"`
	Files       []SnippetFile `json:"files"`
}

// SnippetListOptions for listing snippets
type SnippetListOptions struct {
	Search  string // passed through as the search query parameter
	Page    int
	PerPage int
}

// snippetsPath builds the resource path for a project, encoding the
// project identifier when it is a namespaced path.
func snippetsPath(project string) string {
	return fmt.Sprintf("/projects/%s/snippets", EncodeProject(project))
}

// ListSnippets lists snippets in a project
func (c *Client) ListSnippets(ctx context.Context, project string, opts *SnippetListOptions) ([]Snippet, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Search != "" {
			query.Set("search", opts.Search)
		}
		if opts.Page > 0 {
			query.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PerPage > 0 {
			query.Set("per_page", strconv.Itoa(opts.PerPage))
		}
	}

	resp, err := c.Get(ctx, snippetsPath(project), query)
	if err != nil {
		return nil, err
	}

	return ParseResponse[[]Snippet](resp)
}

// GetSnippet retrieves a single snippet's metadata
func (c *Client) GetSnippet(ctx context.Context, project string, id int) (*Snippet, error) {
	path := fmt.Sprintf("%s/%d", snippetsPath(project), id)

	resp, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	return ParseResponse[*Snippet](resp)
}

// GetSnippetRaw retrieves the raw content of a snippet
func (c *Client) GetSnippetRaw(ctx context.Context, project string, id int) ([]byte, error) {
	path := fmt.Sprintf("%s/%d/raw", snippetsPath(project), id)

	resp, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// SnippetCreateOptions carries the fields of a new snippet
type SnippetCreateOptions struct {
	Title       string `json:"title"`
	FileName    string `json:"file_name"`
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// CreateSnippet creates a new snippet in a project
func (c *Client) CreateSnippet(ctx context.Context, project string, opts *SnippetCreateOptions) (*Snippet, error) {
	resp, err := c.Post(ctx, snippetsPath(project), opts)
	if err != nil {
		return nil, err
	}

	return ParseResponse[*Snippet](resp)
}

// SnippetUpdateOptions carries the changed fields of a snippet.
// Empty fields are left untouched by the server.
type SnippetUpdateOptions struct {
	Title       string `json:"title,omitempty"`
	FileName    string `json:"file_name,omitempty"`
	Content     string `json:"content,omitempty"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// UpdateSnippet updates an existing snippet
func (c *Client) UpdateSnippet(ctx context.Context, project string, id int, opts *SnippetUpdateOptions) (*Snippet, error) {
	path := fmt.Sprintf("%s/%d", snippetsPath(project), id)

	resp, err := c.Put(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	return ParseResponse[*Snippet](resp)
}

// DeleteSnippet deletes a snippet
func (c *Client) DeleteSnippet(ctx context.Context, project string, id int) error {
	path := fmt.Sprintf("%s/%d", snippetsPath(project), id)

	_, err := c.Delete(ctx, path)
	return err
}
