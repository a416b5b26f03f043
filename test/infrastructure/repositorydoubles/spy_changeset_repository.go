//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/changebot/internal/domain/repositories"
)

// SpyChangesetRepository implements repositories.ChangesetRepository as a configurable spy.
type SpyChangesetRepository struct {
	SaveErr error
	Saved   []SavedChangeset
}

// SavedChangeset records a single invocation of Save.
type SavedChangeset struct {
	RepoDir string
	Path    string
	Content string
}

var _ repositories.ChangesetRepository = (*SpyChangesetRepository)(nil)

func (s *SpyChangesetRepository) Save(repoDir, path, content string) error {
	s.Saved = append(s.Saved, SavedChangeset{RepoDir: repoDir, Path: path, Content: content})
	return s.SaveErr
}
