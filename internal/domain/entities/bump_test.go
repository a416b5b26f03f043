//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/changebot/internal/domain/entities"
)

func TestParseBump(t *testing.T) {
	t.Parallel()

	t.Run("should parse dependency and versions", func(t *testing.T) {
		t.Parallel()

		// when
		bump, ok := entities.ParseBump("build(deps): bump minimist from 1.2.5 to 1.2.6 in /packages/cli")

		// then
		require.True(t, ok)
		assert.Equal(t, "minimist", bump.Dependency)
		assert.Equal(t, "1.2.5", bump.From)
		assert.Equal(t, "1.2.6", bump.To)
	})

	t.Run("should not match subjects without versions", func(t *testing.T) {
		t.Parallel()

		// when
		_, ok := entities.ParseBump("Bump lodash")

		// then
		assert.False(t, ok)
	})
}

func TestBumpUpdateType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bump entities.Bump
		want string
	}{
		{"should detect major", entities.Bump{From: "1.9.0", To: "2.0.0"}, entities.UpdateTypeMajor},
		{"should detect minor", entities.Bump{From: "1.2.3", To: "1.3.0"}, entities.UpdateTypeMinor},
		{"should detect patch", entities.Bump{From: "1.2.3", To: "1.2.4"}, entities.UpdateTypePatch},
		{"should accept v prefix", entities.Bump{From: "v0.1.0", To: "v0.2.0"}, entities.UpdateTypeMinor},
		{"should return empty for invalid versions", entities.Bump{From: "latest", To: "next"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			got := tt.bump.UpdateType()

			// then
			assert.Equal(t, tt.want, got)
		})
	}
}
