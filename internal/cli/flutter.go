package cli

import (
	"errors"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/workspace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(flutterCmd)
}

var flutterCmd = &cobra.Command{
	Use:   "flutter [args...]",
	Short: "Run a Flutter command with the project's pinned SDK",
	Long: `Run "fvm flutter <args>" in the project folder, e.g. "fvmctl flutter build apk".
Output is streamed as it is produced.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveWorkspace()
		if err != nil && !errors.Is(err, workspace.ErrNoWorkspace) {
			return err
		}
		return app.client.Flutter(cmd.Context(), dir, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}
