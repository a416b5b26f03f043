package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewChangesetCommand); err != nil {
		return err
	}
	if err := container.Provide(NewBotConfigCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ChangesetCommand) Changeset {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *BotConfigCommand) BotConfig {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
