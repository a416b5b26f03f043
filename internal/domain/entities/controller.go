package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra metadata of a subcommand.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI entry point mounted as a subcommand of the root command.
type Controller interface {
	GetBind() ControllerBind
	AddFlags(cmd *cobra.Command)
	Execute(cmd *cobra.Command, args []string) error
}
