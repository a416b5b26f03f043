package repositories

import "context"

// GitRepository abstracts the version-control operations run against a working tree.
// Every method receives the directory of the repository it operates on.
type GitRepository interface {
	// CurrentBranch returns the short name of the checked-out branch.
	CurrentBranch(ctx context.Context, repoDir string) (string, error)

	// ChangedFiles returns the paths changed between HEAD~1 and HEAD.
	// Deleted paths are not reported.
	ChangedFiles(ctx context.Context, repoDir string) ([]string, error)

	// LastCommitSubject returns the first line of the HEAD commit message.
	LastCommitSubject(ctx context.Context, repoDir string) (string, error)

	// ShortHash returns the abbreviated HEAD commit hash.
	ShortHash(ctx context.Context, repoDir string) (string, error)

	ConfigureIdentity(ctx context.Context, repoDir, name, email string) error
	Add(ctx context.Context, repoDir string, paths ...string) error
	Commit(ctx context.Context, repoDir, message string, signOff bool) error
	Push(ctx context.Context, repoDir string) error
}
