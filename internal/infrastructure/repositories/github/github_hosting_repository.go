package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v66/github"
	globalEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
	forgeGitHub "github.com/rios0rios0/gitforge/pkg/providers/infrastructure/github"

	"github.com/rios0rios0/changebot/internal/domain/repositories"
)

// GitHubHostingRepository implements repositories.HostingRepository for GitHub.
// Name and DiscoverRepositories come from the gitforge GitHub provider.
type GitHubHostingRepository struct {
	globalEntities.RepositoryDiscoverer

	client *gh.Client
}

var _ repositories.HostingRepository = (*GitHubHostingRepository)(nil)

// NewHostingRepository creates a new GitHub hosting repository with the given token.
func NewHostingRepository(token string) globalEntities.RepositoryDiscoverer {
	return &GitHubHostingRepository{
		RepositoryDiscoverer: forgeGitHub.NewProvider(token),
		client:               gh.NewClient(nil).WithAuthToken(token),
	}
}

// NewHostingRepositoryWithClient wraps an already configured go-github client.
func NewHostingRepositoryWithClient(client *gh.Client) *GitHubHostingRepository {
	return &GitHubHostingRepository{
		RepositoryDiscoverer: forgeGitHub.NewProvider(""),
		client:               client,
	}
}

// RepositoryExists returns false, without error, when GitHub answers 404.
func (p *GitHubHostingRepository) RepositoryExists(
	ctx context.Context,
	owner, name string,
) (bool, error) {
	_, resp, err := p.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		var errResp *gh.ErrorResponse
		if errors.As(err, &errResp) && errResp.Response != nil &&
			errResp.Response.StatusCode == http.StatusNotFound {
			return false, nil
		}
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to get repository %s/%s: %w", owner, name, err)
	}

	return true, nil
}
