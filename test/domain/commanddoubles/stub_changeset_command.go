//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/changebot/internal/domain/commands"
	"github.com/rios0rios0/changebot/internal/domain/entities"
)

// StubChangesetCommand is a stub implementation of commands.Changeset.
type StubChangesetCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ChangesetOptions
}

var _ commands.Changeset = (*StubChangesetCommand)(nil)

func (s *StubChangesetCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ChangesetOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
