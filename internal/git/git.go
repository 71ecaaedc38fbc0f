// Package git detects the GitLab project of the enclosing repository,
// used when no project is configured explicitly.
package git

import (
	"fmt"
	"regexp"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// Remote describes the parsed origin remote of a repository
type Remote struct {
	Host    string
	Project string // namespace/project path, without .git
}

var (
	// SSH URL patterns: git@host:group/proj.git or ssh://git@host/group/proj.git
	scpPattern = regexp.MustCompile(`^(?:[^@]+)@([^:/]+):(.+?)(?:\.git)?/?$`)
	sshPattern = regexp.MustCompile(`^ssh://(?:[^@]+@)?([^:/]+)(?::\d+)?/(.+?)(?:\.git)?/?$`)

	// HTTPS URL pattern: https://host/group/proj.git
	httpPattern = regexp.MustCompile(`^https?://(?:[^@/]+@)?([^:/]+)(?::\d+)?/(.+?)(?:\.git)?/?$`)
)

// ParseRemoteURL extracts the host and project path from a git remote URL
func ParseRemoteURL(url string) (*Remote, error) {
	url = strings.TrimSpace(url)

	for _, pattern := range []*regexp.Regexp{sshPattern, httpPattern, scpPattern} {
		if matches := pattern.FindStringSubmatch(url); len(matches) == 3 {
			return &Remote{
				Host:    matches[1],
				Project: matches[2],
			}, nil
		}
	}

	return nil, fmt.Errorf("could not parse remote URL: %s", url)
}

// DetectProject returns the namespace/project path of the origin remote
// of the repository enclosing dir, provided the remote points at host.
func DetectProject(dir, host string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}

	origin, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("no origin remote: %w", err)
	}

	urls := origin.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}

	remote, err := ParseRemoteURL(urls[0])
	if err != nil {
		return "", err
	}

	if remote.Host != host {
		return "", fmt.Errorf("origin remote %s does not point at %s", urls[0], host)
	}

	return remote.Project, nil
}
