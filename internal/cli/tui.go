package cli

import "github.com/spf13/cobra"

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal UI",
	Long:  `Launch the interactive terminal user interface.`,
	RunE:  launchTUI,
}
