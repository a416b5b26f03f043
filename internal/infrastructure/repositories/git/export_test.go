package git

import "context"

// NewGitRepositoryWithRunner exposes a GitRepository whose git invocations go to run.
func NewGitRepositoryWithRunner(
	run func(ctx context.Context, repoDir string, args ...string) (string, error),
) *GitRepository {
	return &GitRepository{run: run}
}
