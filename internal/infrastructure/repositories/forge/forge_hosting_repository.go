package forge

import (
	"context"
	"fmt"
	"strings"

	globalEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changebot/internal/domain/repositories"
)

// Renovate platform names that gitforge registers under a different name.
var providerNames = map[string]string{
	"azure":   "azuredevops",
	"forgejo": "codeberg",
}

// ProviderName maps a Renovate platform name to the gitforge provider name.
func ProviderName(platform string) string {
	if name, ok := providerNames[platform]; ok {
		return name
	}
	return platform
}

// DiscoveryHostingRepository implements repositories.HostingRepository by
// listing the owner's repositories through a gitforge discoverer.
type DiscoveryHostingRepository struct {
	discoverer globalEntities.RepositoryDiscoverer
}

// NewHostingRepository adapts a discoverer. Discoverers that can already look a
// repository up directly are returned as they are.
func NewHostingRepository(discoverer globalEntities.RepositoryDiscoverer) repositories.HostingRepository {
	if hosting, ok := discoverer.(repositories.HostingRepository); ok {
		return hosting
	}
	return &DiscoveryHostingRepository{discoverer: discoverer}
}

func (it *DiscoveryHostingRepository) Name() string { return it.discoverer.Name() }

func (it *DiscoveryHostingRepository) RepositoryExists(
	ctx context.Context,
	owner, name string,
) (bool, error) {
	found, err := it.discoverer.DiscoverRepositories(ctx, owner)
	if err != nil {
		return false, fmt.Errorf("failed to list repositories of %s: %w", owner, err)
	}
	logger.Debugf("Discovered %d repositories for %s on %s", len(found), owner, it.discoverer.Name())

	for _, repo := range found {
		if strings.EqualFold(repo.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
