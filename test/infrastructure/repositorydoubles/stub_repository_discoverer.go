//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	globalEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

// StubRepositoryDiscoverer implements the gitforge RepositoryDiscoverer from a fixed listing.
type StubRepositoryDiscoverer struct {
	ProviderName string
	Repositories map[string][]string // owner -> repository names
	Err          error
	Owners       []string
}

var _ globalEntities.RepositoryDiscoverer = (*StubRepositoryDiscoverer)(nil)

func (s *StubRepositoryDiscoverer) Name() string { return s.ProviderName }

func (s *StubRepositoryDiscoverer) DiscoverRepositories(
	_ context.Context,
	org string,
) ([]globalEntities.Repository, error) {
	s.Owners = append(s.Owners, org)
	if s.Err != nil {
		return nil, s.Err
	}

	names := s.Repositories[org]
	repos := make([]globalEntities.Repository, 0, len(names))
	for _, name := range names {
		repos = append(repos, globalEntities.Repository{
			Name:         name,
			Organization: org,
			ProviderName: s.ProviderName,
		})
	}
	return repos, nil
}
