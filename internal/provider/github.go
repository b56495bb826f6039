package provider

import (
	"context"
	"fmt"
	"strings"

	"shuttle/internal/domain"
)

const defaultGitHubEndpoint = "https://api.github.com"

// GitHub lists the repositories of one organization.
type GitHub struct {
	endpoint string
	org      string
	token    string
}

// NewGitHub creates a provider for the given organization against the
// public GitHub API.
func NewGitHub(org string) *GitHub {
	return NewGitHubWithEndpoint(org, defaultGitHubEndpoint)
}

// NewGitHubWithEndpoint creates a provider against a custom API
// endpoint, e.g. a GitHub Enterprise instance.
func NewGitHubWithEndpoint(org, endpoint string) *GitHub {
	return &GitHub{endpoint: endpoint, org: org}
}

// WithToken sets a bearer token for private organizations.
func (g *GitHub) WithToken(token string) *GitHub {
	g.token = token
	return g
}

// Title implements Provider.
func (g *GitHub) Title() string {
	return fmt.Sprintf("GitHub (%s)", g.org)
}

type githubRepository struct {
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
}

// Load implements Provider. Only the first page of repositories is
// fetched, most recently updated first.
func (g *GitHub) Load(ctx context.Context) ([]domain.Item, error) {
	url := fmt.Sprintf(
		"%s/orgs/%s/repos?sort=updated&per_page=100",
		strings.TrimRight(g.endpoint, "/"),
		g.org,
	)

	var repositories []githubRepository
	if err := getJSON(ctx, url, g.token, &repositories); err != nil {
		return nil, fmt.Errorf("%s: %w", g.Title(), err)
	}

	items := make([]domain.Item, 0, len(repositories))
	for _, repo := range repositories {
		item, err := domain.NewItem(repo.FullName, repo.HTMLURL, repo.FullName)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.Title(), err)
		}
		items = append(items, item)
	}
	return items, nil
}
