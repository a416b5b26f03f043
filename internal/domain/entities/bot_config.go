package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
)

// BotConfig is the static configuration consumed by the Renovate bot runtime.
// Field names in JSON follow Renovate's own configuration keys.
type BotConfig struct {
	BranchPrefix string        `yaml:"branch_prefix" json:"branchPrefix"`
	DryRun       bool          `yaml:"dry_run"       json:"dryRun"`
	Username     string        `yaml:"username"      json:"username"`
	GitAuthor    string        `yaml:"git_author"    json:"gitAuthor"`
	Onboarding   bool          `yaml:"onboarding"    json:"onboarding"`
	Platform     string        `yaml:"platform"      json:"platform"`
	IncludeForks bool          `yaml:"include_forks" json:"includeForks"`
	Repositories []string      `yaml:"repositories"  json:"repositories"`
	PackageRules []PackageRule `yaml:"package_rules" json:"packageRules"`

	// Token authenticates remote validation only; it is never exported.
	Token string `yaml:"token" json:"-"`
}

// PackageRule groups update types that share the same approval policy.
type PackageRule struct {
	Description                 string   `yaml:"description"                   json:"description"`
	MatchUpdateTypes            []string `yaml:"match_update_types"            json:"matchUpdateTypes"`
	DependencyDashboardApproval bool     `yaml:"dependency_dashboard_approval" json:"dependencyDashboardApproval"`
	StabilityDays               int      `yaml:"stability_days"                json:"stabilityDays"`
}

//nolint:gochecknoglobals // lookup tables
var (
	knownPlatforms = []string{
		"azure", "bitbucket", "bitbucket-server", "codecommit", "forgejo", "gitea", "github", "gitlab", "local",
	}
	knownUpdateTypes = []string{
		"major", "minor", "patch", "pin", "pinDigest", "digest", "lockFileMaintenance", "rollback", "bump",
	}
)

// NewDefaultBotConfig returns the bot configuration shipped with the repository.
func NewDefaultBotConfig() BotConfig {
	cfg := BotConfig{}
	cfg.applyDefaults()
	return cfg
}

// FullNames returns the configured repositories split into owner and name.
func (c BotConfig) FullNames() ([][2]string, error) {
	names := make([][2]string, 0, len(c.Repositories))
	for _, repo := range c.Repositories {
		owner, name, ok := strings.Cut(repo, "/")
		if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
			return nil, fmt.Errorf("repository %q must be in owner/name form", repo)
		}
		names = append(names, [2]string{owner, name})
	}
	return names, nil
}

// Validate checks the configuration for values the bot runtime would reject.
func (c BotConfig) Validate() error {
	var errs []error

	if !slices.Contains(knownPlatforms, c.Platform) {
		errs = append(errs, fmt.Errorf("unknown platform %q", c.Platform))
	}
	if c.BranchPrefix == "" {
		errs = append(errs, errors.New("branch prefix is required"))
	}
	if len(c.Repositories) == 0 {
		errs = append(errs, errors.New("at least one repository must be configured"))
	} else if _, err := c.FullNames(); err != nil {
		errs = append(errs, err)
	}
	if c.GitAuthor != "" {
		if _, err := mail.ParseAddress(c.GitAuthor); err != nil {
			errs = append(errs, fmt.Errorf("invalid git author %q: %w", c.GitAuthor, err))
		}
	}

	for i, rule := range c.PackageRules {
		for _, updateType := range rule.MatchUpdateTypes {
			if !slices.Contains(knownUpdateTypes, updateType) {
				errs = append(errs, fmt.Errorf("packageRules[%d]: unknown update type %q", i, updateType))
			}
		}
		if rule.StabilityDays < 0 {
			errs = append(errs, fmt.Errorf("packageRules[%d]: stability days must not be negative", i))
		}
	}

	return errors.Join(errs...)
}

// RenderJSON returns the configuration as indented JSON.
func (c BotConfig) RenderJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bot config: %w", err)
	}
	return append(data, '\n'), nil
}

func (c *BotConfig) applyDefaults() {
	if c.BranchPrefix == "" {
		c.BranchPrefix = "test-renovate/"
	}
	if c.Username == "" {
		c.Username = "renovate-release"
	}
	if c.GitAuthor == "" {
		c.GitAuthor = "Renovate Bot <bot@renovateapp.com>"
	}
	if c.Platform == "" {
		c.Platform = "github"
	}
	if c.Repositories == nil {
		c.Repositories = []string{"jhaals/release-test"}
	}
	if c.PackageRules == nil {
		c.PackageRules = []PackageRule{
			{
				Description: "lockFileMaintenance",
				MatchUpdateTypes: []string{
					"pin", "digest", "patch", "minor", "major", "lockFileMaintenance",
				},
				DependencyDashboardApproval: false,
				StabilityDays:               0,
			},
		}
	}
}
