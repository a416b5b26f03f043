package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBranchPrefix  = "dependabot/"
	DefaultDirectory     = ".changeset"
	DefaultFilePrefix    = "dependabot-"
	DefaultBumpType      = "patch"
	DefaultCommitMessage = "dependabot: add changeset"
	DefaultAuthorName    = "Github changeset workflow"
	DefaultAuthorEmail   = "noreply@backstage.io"
)

// Settings is the top-level configuration for changebot.
type Settings struct {
	Changeset ChangesetSettings `yaml:"changeset"`
	Bot       BotConfig         `yaml:"bot"`
}

// ChangesetSettings controls how changesets are generated and committed.
type ChangesetSettings struct {
	BranchPrefix  string         `yaml:"branch_prefix"`
	Directory     string         `yaml:"directory"`
	FilePrefix    string         `yaml:"file_prefix"`
	BumpType      string         `yaml:"bump_type"`
	CommitMessage string         `yaml:"commit_message"`
	SignOff       *bool          `yaml:"sign_off"`
	Author        AuthorSettings `yaml:"author"`
}

// AuthorSettings is the git identity used for the changeset commit.
type AuthorSettings struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and parses a configuration file, filling unset values
// with defaults and resolving the bot token.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.applyDefaults()
	settings.Bot.Token = resolveToken(settings.Bot.Token)

	if validateErr := settings.Changeset.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// LoadSettings loads the file at path, or searches the default locations
// when path is empty. Without any config file the defaults are returned.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			settings := NewDefaultSettings()
			settings.Bot.Token = resolveToken("")
			return settings, nil
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	locations := []string{
		".",
		".config",
		".github",
	}

	patterns := []string{
		".changebot.yaml",
		".changebot.yml",
		"changebot.yaml",
		"changebot.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// IsSignOff reports whether the changeset commit carries a Signed-off-by trailer.
func (c ChangesetSettings) IsSignOff() bool {
	return c.SignOff == nil || *c.SignOff
}

// Validate checks for required changeset values.
func (c ChangesetSettings) Validate() error {
	if strings.TrimSpace(c.BranchPrefix) == "" {
		return errors.New("changeset.branch_prefix is required")
	}
	if strings.TrimSpace(c.BumpType) == "" {
		return errors.New("changeset.bump_type is required")
	}
	if strings.ContainsAny(c.FilePrefix, `/\`) {
		return fmt.Errorf("changeset.file_prefix %q must not contain path separators", c.FilePrefix)
	}
	if c.Author.Name == "" || c.Author.Email == "" {
		return errors.New("changeset.author requires both name and email")
	}
	return nil
}

func (s *Settings) applyDefaults() {
	cs := &s.Changeset
	if cs.BranchPrefix == "" {
		cs.BranchPrefix = DefaultBranchPrefix
	}
	if cs.Directory == "" {
		cs.Directory = DefaultDirectory
	}
	if cs.FilePrefix == "" {
		cs.FilePrefix = DefaultFilePrefix
	}
	if cs.BumpType == "" {
		cs.BumpType = DefaultBumpType
	}
	if cs.CommitMessage == "" {
		cs.CommitMessage = DefaultCommitMessage
	}
	if cs.Author.Name == "" {
		cs.Author.Name = DefaultAuthorName
	}
	if cs.Author.Email == "" {
		cs.Author.Email = DefaultAuthorEmail
	}

	s.Bot.applyDefaults()
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
// An empty token falls back to GITHUB_TOKEN and then GH_TOKEN.
func resolveToken(raw string) string {
	if raw == "" {
		if t := os.Getenv("GITHUB_TOKEN"); t != "" {
			return t
		}
		return os.Getenv("GH_TOKEN")
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if resolved == "" {
		return resolved
	}

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}
