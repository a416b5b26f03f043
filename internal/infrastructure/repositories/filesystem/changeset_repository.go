package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changebot/internal/domain/repositories"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// ChangesetRepository implements repositories.ChangesetRepository with atomic file writes.
type ChangesetRepository struct{}

// NewChangesetRepository creates a new ChangesetRepository.
func NewChangesetRepository() repositories.ChangesetRepository {
	return &ChangesetRepository{}
}

func (it *ChangesetRepository) Save(repoDir, path, content string) error {
	target := filepath.Join(repoDir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(target), dirPermissions); err != nil {
		return fmt.Errorf("create changeset directory: %w", err)
	}

	pendingFile, err := renameio.NewPendingFile(target, renameio.WithPermissions(filePermissions))
	if err != nil {
		return fmt.Errorf("create pending changeset file: %w", err)
	}
	defer func() {
		if cleanupErr := pendingFile.Cleanup(); cleanupErr != nil {
			logger.Debugf("cleanup pending changeset file: %v", cleanupErr)
		}
	}()

	if _, writeErr := pendingFile.WriteString(content); writeErr != nil {
		return fmt.Errorf("write changeset data: %w", writeErr)
	}

	if replaceErr := pendingFile.CloseAtomicallyReplace(); replaceErr != nil {
		return fmt.Errorf("atomically replace changeset file: %w", replaceErr)
	}

	return nil
}
