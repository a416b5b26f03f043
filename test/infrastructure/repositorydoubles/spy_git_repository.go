//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations. No mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/changebot/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
type SpyGitRepository struct {
	// --- reads ---
	Branch     string
	BranchErr  error
	Files      []string
	FilesErr   error
	Subject    string
	SubjectErr error
	Hash       string
	HashErr    error

	// --- writes ---
	ConfigureErr error
	AddErr       error
	CommitErr    error
	PushErr      error

	// --- call tracking ---
	Calls         []string
	RepoDirs      []string
	IdentityName  string
	IdentityEmail string
	AddedPaths    []string
	CommitMessage string
	CommitSignOff bool
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (s *SpyGitRepository) record(call, repoDir string) {
	s.Calls = append(s.Calls, call)
	s.RepoDirs = append(s.RepoDirs, repoDir)
}

func (s *SpyGitRepository) CurrentBranch(_ context.Context, repoDir string) (string, error) {
	s.record("CurrentBranch", repoDir)
	return s.Branch, s.BranchErr
}

func (s *SpyGitRepository) ChangedFiles(_ context.Context, repoDir string) ([]string, error) {
	s.record("ChangedFiles", repoDir)
	return s.Files, s.FilesErr
}

func (s *SpyGitRepository) LastCommitSubject(_ context.Context, repoDir string) (string, error) {
	s.record("LastCommitSubject", repoDir)
	return s.Subject, s.SubjectErr
}

func (s *SpyGitRepository) ShortHash(_ context.Context, repoDir string) (string, error) {
	s.record("ShortHash", repoDir)
	return s.Hash, s.HashErr
}

func (s *SpyGitRepository) ConfigureIdentity(_ context.Context, repoDir, name, email string) error {
	s.record("ConfigureIdentity", repoDir)
	s.IdentityName = name
	s.IdentityEmail = email
	return s.ConfigureErr
}

func (s *SpyGitRepository) Add(_ context.Context, repoDir string, paths ...string) error {
	s.record("Add", repoDir)
	s.AddedPaths = append(s.AddedPaths, paths...)
	return s.AddErr
}

func (s *SpyGitRepository) Commit(_ context.Context, repoDir, message string, signOff bool) error {
	s.record("Commit", repoDir)
	s.CommitMessage = message
	s.CommitSignOff = signOff
	return s.CommitErr
}

func (s *SpyGitRepository) Push(_ context.Context, repoDir string) error {
	s.record("Push", repoDir)
	return s.PushErr
}

// WriteCalls returns the recorded calls that modify the repository.
func (s *SpyGitRepository) WriteCalls() []string {
	var writes []string
	for _, call := range s.Calls {
		switch call {
		case "ConfigureIdentity", "Add", "Commit", "Push":
			writes = append(writes, call)
		}
	}
	return writes
}
