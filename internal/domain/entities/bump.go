package entities

import (
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

const (
	UpdateTypeMajor = "major"
	UpdateTypeMinor = "minor"
	UpdateTypePatch = "patch"
)

// bumpFromToPattern matches subjects like "Bump lodash from 4.17.20 to 4.17.21 in /packages/app".
var bumpFromToPattern = regexp.MustCompile(`(?i)bump (\S+) from (\S+) to (\S+)`)

// Bump describes a single dependency version change parsed from a commit subject.
type Bump struct {
	Dependency string
	From       string
	To         string
}

// ParseBump extracts the dependency and versions from a dependabot commit subject.
func ParseBump(subject string) (Bump, bool) {
	match := bumpFromToPattern.FindStringSubmatch(subject)
	if match == nil {
		return Bump{}, false
	}
	return Bump{Dependency: match[1], From: match[2], To: match[3]}, true
}

// UpdateType classifies the bump as major, minor or patch.
// It returns an empty string when either version is not valid semver.
func (b Bump) UpdateType() string {
	from := canonicalVersion(b.From)
	to := canonicalVersion(b.To)
	if from == "" || to == "" {
		return ""
	}

	switch {
	case semver.Major(from) != semver.Major(to):
		return UpdateTypeMajor
	case semver.MajorMinor(from) != semver.MajorMinor(to):
		return UpdateTypeMinor
	default:
		return UpdateTypePatch
	}
}

func canonicalVersion(version string) string {
	version = strings.TrimSuffix(version, ".")
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return ""
	}
	return semver.Canonical(version)
}
