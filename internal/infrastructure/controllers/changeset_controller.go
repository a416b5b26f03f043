package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/changebot/internal/domain/commands"
	"github.com/rios0rios0/changebot/internal/domain/entities"
)

// ChangesetController handles the "changeset" subcommand.
type ChangesetController struct {
	command commands.Changeset
}

// NewChangesetController creates a new ChangesetController.
func NewChangesetController(command commands.Changeset) *ChangesetController {
	return &ChangesetController{command: command}
}

// GetBind returns the Cobra command metadata for the changeset controller.
func (it *ChangesetController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "changeset [path]",
		Short: "Add a changeset for the packages bumped by the last dependabot commit",
		Long: `Generate a changeset for a dependabot branch.

When the current branch is a dependabot branch, the package.json files changed
by the last commit are read, a .changeset/dependabot-<hash>.md file listing
their package names is written, and a commit adding it is pushed back to the
branch. On any other branch, or when no package manifest changed, nothing happens.`,
	}
}

// AddFlags adds the changeset-specific flags to the given Cobra command.
func (it *ChangesetController) AddFlags(cmd *cobra.Command) {
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.Flags().Bool("no-push", false, "Commit the changeset without pushing it")
	cmd.Flags().String("branch-prefix", "", "Only act on branches with this prefix (default from config: dependabot/)")
}

// Execute runs the changeset flow.
func (it *ChangesetController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noPush, _ := cmd.Flags().GetBool("no-push")
	branchPrefix, _ := cmd.Flags().GetString("branch-prefix")

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return it.command.Execute(ctx, settings, commands.ChangesetOptions{
		RepoDir:      repoDir,
		DryRun:       dryRun,
		NoPush:       noPush,
		BranchPrefix: branchPrefix,
	})
}
