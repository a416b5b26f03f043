//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/changebot/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "changebot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should use the dependabot changeset defaults", func(t *testing.T) {
		t.Parallel()

		// when
		settings := entities.NewDefaultSettings()

		// then
		cs := settings.Changeset
		assert.Equal(t, "dependabot/", cs.BranchPrefix)
		assert.Equal(t, ".changeset", cs.Directory)
		assert.Equal(t, "dependabot-", cs.FilePrefix)
		assert.Equal(t, "patch", cs.BumpType)
		assert.Equal(t, "dependabot: add changeset", cs.CommitMessage)
		assert.True(t, cs.IsSignOff())
		assert.Equal(t, "Github changeset workflow", cs.Author.Name)
		assert.Equal(t, "noreply@backstage.io", cs.Author.Email)
		require.NoError(t, cs.Validate())
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should merge file values with defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `
changeset:
  branch_prefix: renovate/
  bump_type: minor
  sign_off: false
bot:
  platform: gitlab
  repositories:
    - group/project
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "renovate/", settings.Changeset.BranchPrefix)
		assert.Equal(t, "minor", settings.Changeset.BumpType)
		assert.False(t, settings.Changeset.IsSignOff())
		assert.Equal(t, ".changeset", settings.Changeset.Directory)
		assert.Equal(t, "gitlab", settings.Bot.Platform)
		assert.Equal(t, []string{"group/project"}, settings.Bot.Repositories)
		assert.Equal(t, "renovate-release", settings.Bot.Username)
		assert.Len(t, settings.Bot.PackageRules, 1)
	})

	t.Run("should expand the bot token from the environment", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("CHANGEBOT_TEST_TOKEN", "ghp_from_env")
		path := writeConfig(t, "bot:\n  token: ${CHANGEBOT_TEST_TOKEN}\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "ghp_from_env", settings.Bot.Token)
	})

	t.Run("should fail on invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "changeset: [unclosed")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should fail when the file prefix contains a separator", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "changeset:\n  file_prefix: nested/dependabot-\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file_prefix")
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestResolveToken(t *testing.T) {
	t.Run("should return inline token unchanged", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.ResolveToken("ghp_abc123xyz")

		// then
		assert.Equal(t, "ghp_abc123xyz", result)
	})

	t.Run("should fall back to GITHUB_TOKEN for empty input", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("GITHUB_TOKEN", "ghp_fallback")

		// when
		result := entities.ResolveToken("")

		// then
		assert.Equal(t, "ghp_fallback", result)
	})

	t.Run("should fall back to GH_TOKEN when GITHUB_TOKEN is empty", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "gh_fallback")

		// when
		result := entities.ResolveToken("")

		// then
		assert.Equal(t, "gh_fallback", result)
	})

	t.Run("should return empty for unset env var", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.ResolveToken("${DEFINITELY_NOT_SET_VAR_12345}")

		// then
		assert.Empty(t, result)
	})

	t.Run("should read token from file when path exists", func(t *testing.T) {
		t.Parallel()

		// given
		tokenFile := filepath.Join(t.TempDir(), "token.key")
		require.NoError(t, os.WriteFile(tokenFile, []byte("  file-based-token  \n"), 0o600))

		// when
		result := entities.ResolveToken(tokenFile)

		// then
		assert.Equal(t, "file-based-token", result)
	})
}
