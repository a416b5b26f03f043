package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/changebot/internal/domain/repositories"
)

// packageManifest is the subset of package.json read by changebot.
type packageManifest struct {
	Name string `json:"name"`
}

// ManifestRepository implements repositories.ManifestRepository on the local filesystem.
type ManifestRepository struct{}

// NewManifestRepository creates a new ManifestRepository.
func NewManifestRepository() repositories.ManifestRepository {
	return &ManifestRepository{}
}

func (it *ManifestRepository) PackageName(repoDir, path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(repoDir, filepath.FromSlash(path)))
	if err != nil {
		return "", fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest packageManifest
	if unmarshalErr := json.Unmarshal(data, &manifest); unmarshalErr != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, unmarshalErr)
	}
	if manifest.Name == "" {
		return "", fmt.Errorf("manifest %s has no name field", path)
	}

	return manifest.Name, nil
}
