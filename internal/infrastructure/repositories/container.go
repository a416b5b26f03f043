package repositories

import (
	"go.uber.org/dig"

	fsRepo "github.com/rios0rios0/changebot/internal/infrastructure/repositories/filesystem"
	forgeRepo "github.com/rios0rios0/changebot/internal/infrastructure/repositories/forge"
	gitRepo "github.com/rios0rios0/changebot/internal/infrastructure/repositories/git"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// gitforge provider registry with a discoverer per hosting platform
	if err := container.Provide(forgeRepo.NewProviderRegistry); err != nil {
		return err
	}

	if err := container.Provide(gitRepo.NewGitRepository); err != nil {
		return err
	}
	if err := container.Provide(fsRepo.NewManifestRepository); err != nil {
		return err
	}
	if err := container.Provide(fsRepo.NewChangesetRepository); err != nil {
		return err
	}

	return nil
}
