//go:build unit

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/changebot/internal/infrastructure/repositories/filesystem"
)

func writeManifest(t *testing.T, repoDir, path, content string) {
	t.Helper()
	full := filepath.Join(repoDir, filepath.FromSlash(path))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestManifestRepositoryPackageName(t *testing.T) {
	t.Parallel()

	t.Run("should read the name field", func(t *testing.T) {
		t.Parallel()

		// given
		repoDir := t.TempDir()
		writeManifest(t, repoDir, "plugins/catalog/package.json",
			`{"name": "@backstage/plugin-catalog", "version": "1.0.0", "dependencies": {"lodash": "^4.17.21"}}`)
		repo := filesystem.NewManifestRepository()

		// when
		name, err := repo.PackageName(repoDir, "plugins/catalog/package.json")

		// then
		require.NoError(t, err)
		assert.Equal(t, "@backstage/plugin-catalog", name)
	})

	t.Run("should fail on malformed JSON", func(t *testing.T) {
		t.Parallel()

		// given
		repoDir := t.TempDir()
		writeManifest(t, repoDir, "packages/app/package.json", `{"name": "app",`)
		repo := filesystem.NewManifestRepository()

		// when
		_, err := repo.PackageName(repoDir, "packages/app/package.json")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse packages/app/package.json")
	})

	t.Run("should fail when the name is missing", func(t *testing.T) {
		t.Parallel()

		// given
		repoDir := t.TempDir()
		writeManifest(t, repoDir, "packages/app/package.json", `{"private": true}`)
		repo := filesystem.NewManifestRepository()

		// when
		_, err := repo.PackageName(repoDir, "packages/app/package.json")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no name field")
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		repo := filesystem.NewManifestRepository()

		// when
		_, err := repo.PackageName(t.TempDir(), "packages/missing/package.json")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read manifest")
	})
}
