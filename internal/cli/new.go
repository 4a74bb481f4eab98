package cli

import (
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/commands"
	"github.com/spf13/cobra"
)

var (
	newParent string
	newSDK    string
	newGit    bool
	newOpen   bool
	newNoOpen bool
)

func init() {
	newCmd.Flags().StringVar(&newParent, "parent", "", "Folder to create the project in (default: prompt, current directory)")
	newCmd.Flags().StringVar(&newSDK, "sdk", "", "Flutter version to pin; installed first if missing")
	newCmd.Flags().BoolVar(&newGit, "git", false, "Initialize a git repository in the new project")
	newCmd.Flags().BoolVar(&newOpen, "open", false, "Open the project in the editor without asking")
	newCmd.Flags().BoolVar(&newNoOpen, "no-open", false, "Do not offer to open the project")
	newCmd.MarkFlagsMutuallyExclusive("open", "no-open")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a Flutter project pinned to an FVM version",
	Long: `Create a Flutter project with "fvm flutter create", pin it with "fvm use" and
optionally open it in the configured editor. Missing values are prompted for.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, commands.NewProject, commands.Request{
			Name:    firstArg(args),
			Parent:  newParent,
			Version: newSDK,
			GitInit: newGit,
			Open:    newOpen,
			NoOpen:  newNoOpen,
		})
	},
}
