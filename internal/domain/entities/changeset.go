package entities

import (
	"path"
	"regexp"
	"strings"
)

const (
	frontMatterDelimiter = "---"
	rootManifest         = "package.json"
	changesetExtension   = ".md"
)

// bumpPattern matches the dependency name in a dependabot commit subject.
// Only lowercase names with dashes are recognized; scoped packages are left as-is.
var bumpPattern = regexp.MustCompile(`(b|B)ump ([a-z-]+)`)

// Changeset is a changelog fragment consumed by the release tooling.
type Changeset struct {
	Packages   []string // Package names taken from the changed manifests
	BumpType   string   // Version bump applied to every package (e.g. "patch")
	Summary    string   // Free-text description below the front matter
	UpdateType string   // Update kind detected from the commit subject, informational only
}

// Render returns the file contents: a front matter block mapping every
// package to the bump type, a blank line, then the summary.
// The result carries no trailing newline.
func (c Changeset) Render() string {
	lines := make([]string, 0, len(c.Packages))
	for _, pkg := range c.Packages {
		lines = append(lines, "'"+pkg+"': "+c.BumpType)
	}

	var sb strings.Builder
	sb.WriteString(frontMatterDelimiter + "\n")
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n" + frontMatterDelimiter + "\n\n")
	sb.WriteString(c.Summary)
	return sb.String()
}

// FormatSummary rewrites the first "bump <name>" phrase of a commit subject
// into "Bump `<name>`". Subjects without a match are returned unchanged.
func FormatSummary(subject string) string {
	loc := bumpPattern.FindStringSubmatchIndex(subject)
	if loc == nil {
		return subject
	}
	name := subject[loc[4]:loc[5]]
	return subject[:loc[0]] + "Bump `" + name + "`" + subject[loc[1]:]
}

// ChangesetFileName builds the repository-relative path of a changeset file.
func ChangesetFileName(dir, prefix, shortHash string) string {
	return path.Join(dir, prefix+shortHash+changesetExtension)
}

// FilterManifests keeps the package manifests among the changed files,
// skipping the root manifest. Order is preserved.
func FilterManifests(files []string) []string {
	var manifests []string
	for _, file := range files {
		file = strings.TrimSpace(file)
		if file == "" || file == rootManifest {
			continue
		}
		if path.Base(file) != rootManifest {
			continue
		}
		manifests = append(manifests, file)
	}
	return manifests
}
