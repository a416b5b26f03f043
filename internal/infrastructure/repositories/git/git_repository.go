package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changebot/internal/domain/repositories"
)

// commandRunner executes a git subcommand inside a working tree and returns its output.
type commandRunner func(ctx context.Context, repoDir string, args ...string) (string, error)

// GitRepository implements repositories.GitRepository. Reads go through
// go-git; writes and the abbreviated hash shell out to the git binary so the
// CI credential helpers and hooks configured for the checkout still apply.
type GitRepository struct {
	run commandRunner
}

// NewGitRepository creates a GitRepository backed by the git binary on PATH.
func NewGitRepository() repositories.GitRepository {
	return &GitRepository{run: runGit}
}

func (it *GitRepository) CurrentBranch(_ context.Context, repoDir string) (string, error) {
	repo, err := open(repoDir)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		// detached HEAD, same as `git branch --show-current`
		return "", nil
	}
	return head.Name().Short(), nil
}

func (it *GitRepository) ChangedFiles(_ context.Context, repoDir string) ([]string, error) {
	commit, err := headCommit(repoDir)
	if err != nil {
		return nil, err
	}
	if commit.NumParents() == 0 {
		return nil, errors.New("HEAD has no parent commit to diff against")
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return nil, fmt.Errorf("failed to load HEAD~1: %w", err)
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to load HEAD~1 tree: %w", err)
	}
	headTree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to load HEAD tree: %w", err)
	}

	changes, err := parentTree.Diff(headTree)
	if err != nil {
		return nil, fmt.Errorf("failed to diff HEAD~1..HEAD: %w", err)
	}

	files := make([]string, 0, len(changes))
	for _, change := range changes {
		if change.To.Name == "" {
			continue // deleted
		}
		files = append(files, change.To.Name)
	}
	logger.Debugf("Changed files in HEAD: %v", files)
	return files, nil
}

func (it *GitRepository) LastCommitSubject(_ context.Context, repoDir string) (string, error) {
	commit, err := headCommit(repoDir)
	if err != nil {
		return "", err
	}
	return subjectOf(commit.Message), nil
}

// ShortHash returns `git rev-parse --short HEAD`, which honours core.abbrev.
func (it *GitRepository) ShortHash(ctx context.Context, repoDir string) (string, error) {
	hash, err := it.run(ctx, repoDir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	if hash == "" {
		return "", errors.New("git rev-parse returned an empty hash")
	}
	return hash, nil
}

// ConfigureIdentity sets the committer identity for this repository only.
func (it *GitRepository) ConfigureIdentity(ctx context.Context, repoDir, name, email string) error {
	if _, err := it.run(ctx, repoDir, "config", "user.email", email); err != nil {
		return err
	}
	_, err := it.run(ctx, repoDir, "config", "user.name", name)
	return err
}

func (it *GitRepository) Add(ctx context.Context, repoDir string, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	_, err := it.run(ctx, repoDir, args...)
	return err
}

func (it *GitRepository) Commit(ctx context.Context, repoDir, message string, signOff bool) error {
	args := []string{"commit"}
	if signOff {
		args = append(args, "-s")
	}
	args = append(args, "-m", message)
	_, err := it.run(ctx, repoDir, args...)
	return err
}

func (it *GitRepository) Push(ctx context.Context, repoDir string) error {
	_, err := it.run(ctx, repoDir, "push")
	return err
}

// subjectOf mirrors `git log --format=%s`: the first paragraph of the
// message with its lines joined by single spaces.
func subjectOf(message string) string {
	var lines []string
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if len(lines) > 0 {
				break
			}
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, " ")
}

func open(repoDir string) (*gogit.Repository, error) {
	//nolint:exhaustruct // only DetectDotGit is relevant
	repo, err := gogit.PlainOpenWithOptions(repoDir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", repoDir, err)
	}
	return repo, nil
}

func headCommit(repoDir string) (*object.Commit, error) {
	repo, err := open(repoDir)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to load HEAD commit: %w", err)
	}
	return commit, nil
}

// runGit runs `git <args>` in repoDir, returning trimmed stdout.
func runGit(ctx context.Context, repoDir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoDir

	logger.Debugf("Running: git %s", strings.Join(args, " "))
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}

	return strings.TrimSpace(string(output)), nil
}
