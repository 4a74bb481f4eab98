package cli

import (
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/commands"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(globalCmd)
}

var globalCmd = &cobra.Command{
	Use:   "global [version]",
	Short: "Set the global Flutter version",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, commands.SetGlobal, commands.Request{Version: firstArg(args)})
	},
}
