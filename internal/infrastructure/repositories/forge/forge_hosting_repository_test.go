//go:build unit

package forge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/changebot/internal/domain/repositories"
	"github.com/rios0rios0/changebot/internal/infrastructure/repositories/forge"
	doubles "github.com/rios0rios0/changebot/test/infrastructure/repositorydoubles"
)

func TestDiscoveryHostingRepository(t *testing.T) {
	t.Parallel()

	t.Run("should find a repository in the owner listing", func(t *testing.T) {
		t.Parallel()

		// given
		discoverer := &doubles.StubRepositoryDiscoverer{
			ProviderName: "gitlab",
			Repositories: map[string][]string{"backstage": {"backstage", "Community-Plugins"}},
		}
		hosting := forge.NewHostingRepository(discoverer)

		// when
		exists, err := hosting.RepositoryExists(context.Background(), "backstage", "community-plugins")

		// then
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, []string{"backstage"}, discoverer.Owners)
		assert.Equal(t, "gitlab", hosting.Name())
	})

	t.Run("should report a repository missing from the listing", func(t *testing.T) {
		t.Parallel()

		// given
		discoverer := &doubles.StubRepositoryDiscoverer{
			ProviderName: "codeberg",
			Repositories: map[string][]string{"forgejo": {"forgejo"}},
		}
		hosting := forge.NewHostingRepository(discoverer)

		// when
		exists, err := hosting.RepositoryExists(context.Background(), "forgejo", "missing")

		// then
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("should wrap discovery errors with the owner", func(t *testing.T) {
		t.Parallel()

		// given
		discoverer := &doubles.StubRepositoryDiscoverer{ProviderName: "azuredevops", Err: errors.New("401 Unauthorized")}
		hosting := forge.NewHostingRepository(discoverer)

		// when
		_, err := hosting.RepositoryExists(context.Background(), "contoso", "web")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list repositories of contoso")
		assert.Contains(t, err.Error(), "401 Unauthorized")
	})

	t.Run("should use a discoverer that already looks repositories up directly", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubHostingRepository{
			PlatformName: "github",
			Existing:     map[string]bool{"jhaals/release-test": true},
		}

		// when
		hosting := forge.NewHostingRepository(stub)
		exists, err := hosting.RepositoryExists(context.Background(), "jhaals", "release-test")

		// then
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Same(t, stub, hosting)
	})
}

func TestProviderName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		platform string
		expected string
	}{
		{platform: "github", expected: "github"},
		{platform: "gitlab", expected: "gitlab"},
		{platform: "azure", expected: "azuredevops"},
		{platform: "forgejo", expected: "codeberg"},
		{platform: "bitbucket", expected: "bitbucket"},
	}

	for _, tt := range tests {
		t.Run("should map "+tt.platform, func(t *testing.T) {
			t.Parallel()

			// when
			name := forge.ProviderName(tt.platform)

			// then
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestNewProviderRegistry(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"github", "gitlab", "azuredevops", "codeberg"} {
		t.Run("should register a discoverer for "+name, func(t *testing.T) {
			t.Parallel()

			// given
			registry := forge.NewProviderRegistry()

			// when
			discoverer, err := registry.GetDiscoverer(name, "token")

			// then
			require.NoError(t, err)
			assert.Equal(t, name, discoverer.Name())
		})
	}

	t.Run("should look GitHub repositories up directly", func(t *testing.T) {
		t.Parallel()

		// given
		registry := forge.NewProviderRegistry()

		// when
		discoverer, err := registry.GetDiscoverer("github", "token")

		// then
		require.NoError(t, err)
		assert.Implements(t, (*repositories.HostingRepository)(nil), discoverer)
	})

	t.Run("should reject platforms gitforge does not support", func(t *testing.T) {
		t.Parallel()

		// given
		registry := forge.NewProviderRegistry()

		// when
		_, err := registry.GetDiscoverer("bitbucket", "token")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown discoverer type: "bitbucket"`)
	})
}
