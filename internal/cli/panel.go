package cli

import (
	"fmt"
	"os"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/commands"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(panelCmd)
}

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Pick FVM commands from an interactive list",
	Long: `Open a full-screen list of the FVM commands. Choosing an entry runs it and
returns to the list; press q or esc to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsTerminal(os.Stdin) || !ui.IsTerminal(os.Stdout) {
			return fmt.Errorf("the panel needs an interactive terminal; run the commands directly instead")
		}

		entries := panelEntries()
		for {
			chosen, err := ui.RunPanel(app.indicator.Text(), entries, os.Stdin, os.Stdout)
			if err != nil {
				return err
			}
			if chosen == "" {
				return nil
			}
			id, ok := commands.ParseID(chosen)
			if !ok {
				return fmt.Errorf("unknown command %q", chosen)
			}
			// Failures were already shown; the panel stays open.
			_ = dispatch(cmd, id, commands.Request{})
		}
	},
}

func panelEntries() []ui.PanelEntry {
	ids := commands.All()
	entries := make([]ui.PanelEntry, 0, len(ids))
	for _, id := range ids {
		info, _ := commands.Describe(id)
		entries = append(entries, ui.PanelEntry{ID: string(id), Label: info.Title, Detail: info.Description})
	}
	return entries
}
