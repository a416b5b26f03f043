package repositories

// ChangesetRepository persists rendered changeset files.
type ChangesetRepository interface {
	// Save writes content to path, relative to repoDir, creating parent directories as needed.
	Save(repoDir, path, content string) error
}
