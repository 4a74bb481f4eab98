package cli

import (
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/commands"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove [version]",
	Aliases: []string{"rm", "uninstall"},
	Short:   "Remove an installed Flutter version",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, commands.RemoveVersion, commands.Request{Version: firstArg(args)})
	},
}
