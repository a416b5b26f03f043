package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	registryInfra "github.com/rios0rios0/gitforge/pkg/registry/infrastructure"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changebot/internal/domain/entities"
	forgeRepo "github.com/rios0rios0/changebot/internal/infrastructure/repositories/forge"
)

// BotConfig is the interface for the bot configuration commands.
type BotConfig interface {
	Export(settings *entities.Settings, w io.Writer) error
	Validate(ctx context.Context, settings *entities.Settings, opts ValidateOptions) error
}

// ValidateOptions holds runtime options for bot configuration validation.
type ValidateOptions struct {
	Remote bool // Also check that every repository exists on the hosting platform
}

// BotConfigCommand validates and exports the Renovate bot configuration.
type BotConfigCommand struct {
	providerRegistry *registryInfra.ProviderRegistry
}

// NewBotConfigCommand creates a new BotConfigCommand with the given gitforge provider registry.
func NewBotConfigCommand(providerRegistry *registryInfra.ProviderRegistry) *BotConfigCommand {
	return &BotConfigCommand{providerRegistry: providerRegistry}
}

// Export validates the bot configuration and writes it as JSON.
func (it *BotConfigCommand) Export(settings *entities.Settings, w io.Writer) error {
	if err := settings.Bot.Validate(); err != nil {
		return fmt.Errorf("invalid bot config: %w", err)
	}

	data, err := settings.Bot.RenderJSON()
	if err != nil {
		return err
	}

	if _, writeErr := w.Write(data); writeErr != nil {
		return fmt.Errorf("failed to write bot config: %w", writeErr)
	}
	return nil
}

// Validate checks the bot configuration and, when requested, that every
// configured repository is reachable on the hosting platform.
func (it *BotConfigCommand) Validate(
	ctx context.Context,
	settings *entities.Settings,
	opts ValidateOptions,
) error {
	bot := settings.Bot
	if err := bot.Validate(); err != nil {
		return fmt.Errorf("invalid bot config: %w", err)
	}
	logger.Infof("Bot config is valid: %d repositories on %s", len(bot.Repositories), bot.Platform)

	if !opts.Remote {
		return nil
	}

	if bot.Token == "" {
		return errors.New("remote validation requires a token (bot.token, GITHUB_TOKEN or GH_TOKEN)")
	}

	discoverer, err := it.providerRegistry.GetDiscoverer(forgeRepo.ProviderName(bot.Platform), bot.Token)
	if err != nil {
		return fmt.Errorf("remote validation is not available for %s: %w", bot.Platform, err)
	}
	hosting := forgeRepo.NewHostingRepository(discoverer)

	fullNames, err := bot.FullNames()
	if err != nil {
		return err
	}

	var missing []string
	for _, fullName := range fullNames {
		owner, name := fullName[0], fullName[1]
		exists, checkErr := hosting.RepositoryExists(ctx, owner, name)
		if checkErr != nil {
			return fmt.Errorf("failed to check %s/%s on %s: %w", owner, name, hosting.Name(), checkErr)
		}
		if !exists {
			logger.Warnf("Repository %s/%s not found on %s", owner, name, hosting.Name())
			missing = append(missing, owner+"/"+name)
			continue
		}
		logger.Debugf("Repository %s/%s found on %s", owner, name, hosting.Name())
	}

	if len(missing) > 0 {
		return fmt.Errorf("repositories not found on %s: %s", hosting.Name(), strings.Join(missing, ", "))
	}
	return nil
}
