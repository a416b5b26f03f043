//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"errors"

	globalEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"

	"github.com/rios0rios0/changebot/internal/domain/repositories"
)

// StubHostingRepository implements repositories.HostingRepository from a set of existing repositories.
// It also satisfies the gitforge RepositoryDiscoverer so it can be registered directly.
type StubHostingRepository struct {
	PlatformName string
	Existing     map[string]bool // "owner/name" -> exists
	Err          error
	Checked      []string
}

var (
	_ repositories.HostingRepository      = (*StubHostingRepository)(nil)
	_ globalEntities.RepositoryDiscoverer = (*StubHostingRepository)(nil)
)

func (s *StubHostingRepository) Name() string { return s.PlatformName }

func (s *StubHostingRepository) RepositoryExists(_ context.Context, owner, name string) (bool, error) {
	fullName := owner + "/" + name
	s.Checked = append(s.Checked, fullName)
	if s.Err != nil {
		return false, s.Err
	}
	return s.Existing[fullName], nil
}

func (s *StubHostingRepository) DiscoverRepositories(
	_ context.Context,
	_ string,
) ([]globalEntities.Repository, error) {
	return nil, errors.New("StubHostingRepository looks repositories up directly")
}
