package cli

import (
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/commands"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install [version]",
	Short: "Install a Flutter release or channel",
	Long: `Install a Flutter SDK with "fvm install". The version may be a release
(3.24.0), a channel (stable, beta, dev, master) or a commit hash.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, commands.InstallVersion, commands.Request{Version: firstArg(args)})
	},
}
