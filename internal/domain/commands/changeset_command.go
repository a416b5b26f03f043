package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changebot/internal/domain/entities"
	"github.com/rios0rios0/changebot/internal/domain/repositories"
)

// Changeset is the interface for the changeset command.
type Changeset interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ChangesetOptions) error
}

// ChangesetOptions holds runtime options for a single changeset run.
type ChangesetOptions struct {
	RepoDir      string
	DryRun       bool
	NoPush       bool
	BranchPrefix string // If set, overrides the configured branch prefix
}

// ChangesetCommand generates a changeset for the packages touched by the last
// dependency-bot commit and pushes it back to the branch.
type ChangesetCommand struct {
	gitRepository       repositories.GitRepository
	manifestRepository  repositories.ManifestRepository
	changesetRepository repositories.ChangesetRepository
}

// NewChangesetCommand creates a new ChangesetCommand.
func NewChangesetCommand(
	gitRepository repositories.GitRepository,
	manifestRepository repositories.ManifestRepository,
	changesetRepository repositories.ChangesetRepository,
) *ChangesetCommand {
	return &ChangesetCommand{
		gitRepository:       gitRepository,
		manifestRepository:  manifestRepository,
		changesetRepository: changesetRepository,
	}
}

// Execute runs the changeset flow. Each step waits for the previous one and
// the first failure aborts the run.
func (it *ChangesetCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ChangesetOptions,
) error {
	repoDir, err := filepath.Abs(opts.RepoDir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	cfg := settings.Changeset
	prefix := cfg.BranchPrefix
	if opts.BranchPrefix != "" {
		prefix = opts.BranchPrefix
	}

	branch, err := it.gitRepository.CurrentBranch(ctx, repoDir)
	if err != nil {
		return fmt.Errorf("failed to read current branch: %w", err)
	}
	if !strings.HasPrefix(branch, prefix) {
		logger.Info("Not a dependabot branch")
		return nil
	}
	logger.Debugf("Branch %q matches prefix %q", branch, prefix)

	changed, err := it.gitRepository.ChangedFiles(ctx, repoDir)
	if err != nil {
		return fmt.Errorf("failed to list changed files: %w", err)
	}
	manifests := entities.FilterManifests(changed)
	if len(manifests) == 0 {
		logger.Info("no package.json changes, skipping")
		return nil
	}

	subject, err := it.gitRepository.LastCommitSubject(ctx, repoDir)
	if err != nil {
		return fmt.Errorf("failed to read commit subject: %w", err)
	}

	packages, err := it.packageNames(repoDir, manifests)
	if err != nil {
		return err
	}

	shortHash, err := it.gitRepository.ShortHash(ctx, repoDir)
	if err != nil {
		return fmt.Errorf("failed to resolve short hash: %w", err)
	}

	changeset := entities.Changeset{
		Packages: packages,
		BumpType: cfg.BumpType,
		Summary:  entities.FormatSummary(subject),
	}
	if bump, ok := entities.ParseBump(subject); ok && bump.UpdateType() != "" {
		changeset.UpdateType = bump.UpdateType()
		logger.Infof("Detected %s update of %s (%s -> %s)",
			changeset.UpdateType, bump.Dependency, bump.From, bump.To)
	}

	fileName := entities.ChangesetFileName(cfg.Directory, cfg.FilePrefix, shortHash)
	content := changeset.Render()

	if opts.DryRun {
		logger.Infof("[dry-run] Would write %s:\n%s", fileName, content)
		return nil
	}

	if saveErr := it.changesetRepository.Save(repoDir, fileName, content); saveErr != nil {
		return fmt.Errorf("failed to write changeset: %w", saveErr)
	}
	logger.Infof("Wrote %s for %d package(s)", fileName, len(packages))

	return it.commitChangeset(ctx, repoDir, fileName, cfg, opts.NoPush)
}

func (it *ChangesetCommand) packageNames(repoDir string, manifests []string) ([]string, error) {
	names := make([]string, 0, len(manifests))
	for _, manifest := range manifests {
		name, err := it.manifestRepository.PackageName(repoDir, manifest)
		if err != nil {
			return nil, fmt.Errorf("failed to read package name from %s: %w", manifest, err)
		}
		names = append(names, name)
	}
	return names, nil
}

func (it *ChangesetCommand) commitChangeset(
	ctx context.Context,
	repoDir, fileName string,
	cfg entities.ChangesetSettings,
	noPush bool,
) error {
	if err := it.gitRepository.ConfigureIdentity(ctx, repoDir, cfg.Author.Name, cfg.Author.Email); err != nil {
		return fmt.Errorf("failed to configure git identity: %w", err)
	}
	if err := it.gitRepository.Add(ctx, repoDir, fileName); err != nil {
		return fmt.Errorf("failed to stage %s: %w", fileName, err)
	}
	if err := it.gitRepository.Commit(ctx, repoDir, cfg.CommitMessage, cfg.IsSignOff()); err != nil {
		return fmt.Errorf("failed to commit changeset: %w", err)
	}

	if noPush {
		logger.Info("Skipping push")
		return nil
	}
	if err := it.gitRepository.Push(ctx, repoDir); err != nil {
		return fmt.Errorf("failed to push changeset: %w", err)
	}

	logger.Info("Pushed changeset commit")
	return nil
}
