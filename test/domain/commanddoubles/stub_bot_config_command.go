//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"io"

	"github.com/rios0rios0/changebot/internal/domain/commands"
	"github.com/rios0rios0/changebot/internal/domain/entities"
)

// StubBotConfigCommand is a stub implementation of commands.BotConfig.
type StubBotConfigCommand struct {
	ExportCallCount   int
	ExportErr         error
	ExportOutput      string
	ValidateCallCount int
	ValidateErr       error
	LastSettings      *entities.Settings
	LastValidateOpts  commands.ValidateOptions
}

var _ commands.BotConfig = (*StubBotConfigCommand)(nil)

func (s *StubBotConfigCommand) Export(settings *entities.Settings, w io.Writer) error {
	s.ExportCallCount++
	s.LastSettings = settings
	if s.ExportErr != nil {
		return s.ExportErr
	}
	_, err := io.WriteString(w, s.ExportOutput)
	return err
}

func (s *StubBotConfigCommand) Validate(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ValidateOptions,
) error {
	s.ValidateCallCount++
	s.LastSettings = settings
	s.LastValidateOpts = opts
	return s.ValidateErr
}
