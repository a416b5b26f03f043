package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/changebot/internal/domain/commands"
	"github.com/rios0rios0/changebot/internal/domain/entities"
)

// ExportConfigController handles the "export-config" subcommand.
type ExportConfigController struct {
	command commands.BotConfig
}

// NewExportConfigController creates a new ExportConfigController.
func NewExportConfigController(command commands.BotConfig) *ExportConfigController {
	return &ExportConfigController{command: command}
}

// GetBind returns the Cobra command metadata for the export controller.
func (it *ExportConfigController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "export-config",
		Short: "Print the Renovate bot configuration as JSON",
		Long: `Print the Renovate bot configuration as JSON.

The output uses Renovate's configuration keys and can be written to
config.json for a self-hosted Renovate runner.`,
	}
}

// AddFlags is a no-op: export-config only uses the global flags.
func (it *ExportConfigController) AddFlags(_ *cobra.Command) {}

// Execute writes the bot configuration to the command output.
func (it *ExportConfigController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	return it.command.Export(settings, cmd.OutOrStdout())
}

// ValidateConfigController handles the "validate-config" subcommand.
type ValidateConfigController struct {
	command commands.BotConfig
}

// NewValidateConfigController creates a new ValidateConfigController.
func NewValidateConfigController(command commands.BotConfig) *ValidateConfigController {
	return &ValidateConfigController{command: command}
}

// GetBind returns the Cobra command metadata for the validate controller.
func (it *ValidateConfigController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "validate-config",
		Short: "Validate the Renovate bot configuration",
		Long: `Validate the Renovate bot configuration.

With --remote, every configured repository is also looked up on the
hosting platform using bot.token, GITHUB_TOKEN or GH_TOKEN.`,
	}
}

// AddFlags adds the validate-specific flags to the given Cobra command.
func (it *ValidateConfigController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("remote", false, "Check that every configured repository exists on the platform")
}

// Execute validates the bot configuration.
func (it *ValidateConfigController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	remote, _ := cmd.Flags().GetBool("remote")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return it.command.Validate(ctx, settings, commands.ValidateOptions{Remote: remote})
}
