package forge

import (
	globalEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
	"github.com/rios0rios0/gitforge/pkg/providers/infrastructure/azuredevops"
	"github.com/rios0rios0/gitforge/pkg/providers/infrastructure/codeberg"
	"github.com/rios0rios0/gitforge/pkg/providers/infrastructure/gitlab"
	registryInfra "github.com/rios0rios0/gitforge/pkg/registry/infrastructure"

	ghRepo "github.com/rios0rios0/changebot/internal/infrastructure/repositories/github"
)

// NewProviderRegistry registers a discoverer for every platform gitforge
// supports. GitHub goes through the go-github repository, which looks
// repositories up directly instead of listing the whole owner.
func NewProviderRegistry() *registryInfra.ProviderRegistry {
	registry := registryInfra.NewProviderRegistry()
	registry.RegisterDiscoverer("github", ghRepo.NewHostingRepository)
	registry.RegisterDiscoverer("gitlab", discovererOf(gitlab.NewProvider))
	registry.RegisterDiscoverer("azuredevops", discovererOf(azuredevops.NewProvider))
	registry.RegisterDiscoverer("codeberg", discovererOf(codeberg.NewProvider))
	return registry
}

func discovererOf(factory registryInfra.ProviderFactory) registryInfra.DiscovererFactory {
	return func(token string) globalEntities.RepositoryDiscoverer {
		return factory(token)
	}
}
