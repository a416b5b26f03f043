//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/changebot/internal/domain/repositories"
)

// StubManifestRepository implements repositories.ManifestRepository from a path -> name map.
type StubManifestRepository struct {
	Names     map[string]string
	Err       error
	ReadPaths []string
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) PackageName(_ string, path string) (string, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if s.Err != nil {
		return "", s.Err
	}
	if name, ok := s.Names[path]; ok {
		return name, nil
	}
	return "", fmt.Errorf("manifest not found: %s", path)
}
