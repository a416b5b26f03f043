//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/changebot/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	branchPrefix  string
	directory     string
	bumpType      string
	commitMessage string
	signOff       bool
	platform      string
	repositories  []string
	token         string
}

// NewSettingsBuilder creates a new settings builder starting from the defaults.
func NewSettingsBuilder() *SettingsBuilder {
	b := &SettingsBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.setDefaults()
	return b
}

func (b *SettingsBuilder) setDefaults() {
	b.branchPrefix = entities.DefaultBranchPrefix
	b.directory = entities.DefaultDirectory
	b.bumpType = entities.DefaultBumpType
	b.commitMessage = entities.DefaultCommitMessage
	b.signOff = true
	b.platform = "github"
	b.repositories = []string{"jhaals/release-test"}
	b.token = ""
}

// WithBranchPrefix sets the dependency-bot branch prefix.
func (b *SettingsBuilder) WithBranchPrefix(prefix string) *SettingsBuilder {
	b.branchPrefix = prefix
	return b
}

// WithDirectory sets the changeset directory.
func (b *SettingsBuilder) WithDirectory(dir string) *SettingsBuilder {
	b.directory = dir
	return b
}

// WithBumpType sets the bump tag written for every package.
func (b *SettingsBuilder) WithBumpType(bumpType string) *SettingsBuilder {
	b.bumpType = bumpType
	return b
}

// WithCommitMessage sets the changeset commit message.
func (b *SettingsBuilder) WithCommitMessage(message string) *SettingsBuilder {
	b.commitMessage = message
	return b
}

// WithSignOff sets whether the commit is signed off.
func (b *SettingsBuilder) WithSignOff(signOff bool) *SettingsBuilder {
	b.signOff = signOff
	return b
}

// WithPlatform sets the bot platform.
func (b *SettingsBuilder) WithPlatform(platform string) *SettingsBuilder {
	b.platform = platform
	return b
}

// WithRepositories sets the bot repositories.
func (b *SettingsBuilder) WithRepositories(repos ...string) *SettingsBuilder {
	b.repositories = repos
	return b
}

// WithToken sets the bot token.
func (b *SettingsBuilder) WithToken(token string) *SettingsBuilder {
	b.token = token
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := entities.NewDefaultSettings()
	settings.Changeset.BranchPrefix = b.branchPrefix
	settings.Changeset.Directory = b.directory
	settings.Changeset.BumpType = b.bumpType
	settings.Changeset.CommitMessage = b.commitMessage
	signOff := b.signOff
	settings.Changeset.SignOff = &signOff
	settings.Bot.Platform = b.platform
	settings.Bot.Repositories = append([]string(nil), b.repositories...)
	settings.Bot.Token = b.token
	return settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.setDefaults()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		branchPrefix:  b.branchPrefix,
		directory:     b.directory,
		bumpType:      b.bumpType,
		commitMessage: b.commitMessage,
		signOff:       b.signOff,
		platform:      b.platform,
		repositories:  append([]string(nil), b.repositories...),
		token:         b.token,
	}
}
