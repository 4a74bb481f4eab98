package cli

import (
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/commands"
	"github.com/spf13/cobra"
)

var (
	listJSON  bool
	listTable bool
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print parsed versions as JSON")
	listCmd.Flags().BoolVar(&listTable, "table", false, "Print parsed versions as a sorted table")
	listCmd.MarkFlagsMutuallyExclusive("json", "table")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed Flutter versions",
	Long: `List installed Flutter versions. Without flags the output of "fvm list" is
printed unchanged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := commands.FormatRaw
		switch {
		case listJSON:
			format = commands.FormatJSON
		case listTable:
			format = commands.FormatTable
		}
		return dispatch(cmd, commands.List, commands.Request{Format: format})
	},
}
