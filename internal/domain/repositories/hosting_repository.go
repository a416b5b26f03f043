package repositories

import "context"

// HostingRepository abstracts a Git hosting platform the bot is configured against.
type HostingRepository interface {
	// Name returns the platform identifier (e.g. "github").
	Name() string

	// RepositoryExists reports whether owner/name is visible with the configured token.
	RepositoryExists(ctx context.Context, owner, name string) (bool, error)
}
