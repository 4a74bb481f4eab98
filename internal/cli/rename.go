package cli

import (
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/commands"
	"github.com/spf13/cobra"
)

var renameForce bool

func init() {
	renameCmd.Flags().BoolVarP(&renameForce, "force", "f", false, "Rename even if the affected files have uncommitted changes")
	rootCmd.AddCommand(renameCmd)
}

var renameCmd = &cobra.Command{
	Use:   "rename [package-id]",
	Short: "Change the project's application identifier",
	Long: `Rewrite the application identifier in android/app/build.gradle (or
build.gradle.kts), ios/Runner.xcodeproj/project.pbxproj and the pubspec.yaml
package name. Files that do not exist are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, commands.RenamePackage, commands.Request{
			PackageID: firstArg(args),
			Force:     renameForce,
		})
	},
}
