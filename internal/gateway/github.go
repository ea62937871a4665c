// Package gateway provides a gateway to the GitHub REST API,
// abstracting away the underlying client.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/smokeytempo/timelinegen/internal/domain"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com/"

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	// FetchUserRepos lists the first page of a user's public repositories.
	// A user without repositories yields an empty slice and a nil error.
	FetchUserRepos(ctx context.Context, username string) ([]*domain.Repository, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// baseURL may be empty, in which case DefaultBaseURL is used. Requests are unauthenticated.
func NewGitHubGateway(baseURL string, httpClient *http.Client, logger *log.Logger) (*GitHubGateway, error) {
	restClient := github.NewClient(httpClient)
	if baseURL != "" && baseURL != DefaultBaseURL {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse API base URL %q: %w", baseURL, err)
		}
		restClient.BaseURL = u
	}
	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

// FetchUserRepos issues a single GET /users/{username}/repos with the API's default page size.
// Every failure is reported as domain.ErrFetch; the underlying cause is kept in the chain for logs.
func (g *GitHubGateway) FetchUserRepos(ctx context.Context, username string) ([]*domain.Repository, error) {
	g.logger.Printf("Fetching public repositories for %s...", username)
	repos, _, err := g.restClient.Repositories.ListByUser(ctx, url.PathEscape(username), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for %s: %w: %w", username, domain.ErrFetch, err)
	}

	result := make([]*domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.GetName() == "" || repo.CreatedAt == nil {
			return nil, fmt.Errorf("malformed repository in response for %s: %w", username, domain.ErrFetch)
		}
		result = append(result, domain.NewRepository(
			repo.GetName(),
			repo.GetCreatedAt().Time,
			repo.GetDescription(),
			repo.GetLanguage(),
		))
	}
	g.logger.Printf("Completed fetching %d repositories for %s.", len(result), username)
	return result, nil
}
