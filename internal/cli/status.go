package cli

import (
	"fmt"
	"time"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/config"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/status"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/ui"
	"github.com/spf13/cobra"
)

// staleAfter marks a cached status line as possibly outdated.
const staleAfter = 24 * time.Hour

var statusCached bool

func init() {
	statusCmd.Flags().BoolVar(&statusCached, "cached", false, "Print the last known status without running fvm")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the global Flutter version status line",
	Long: `Print the status line ("FVM 3.24.0", or "FVM" when no global version is
set or fvm is unavailable). With --cached the last saved line is printed,
suitable for shell prompts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if statusCached {
			fmt.Fprintln(out, app.indicator.Text())
			if c, err := status.LoadCache(config.Dir()); err == nil && c != nil && status.IsStale(c, staleAfter) {
				fmt.Fprintf(cmd.ErrOrStderr(), "status is older than %s; run without --cached to refresh\n", staleAfter)
			}
			return nil
		}

		text := app.indicator.Refresh(cmd.Context())
		if ui.IsTerminal(out) {
			text = ui.StatusStyle.Render(text)
		}
		fmt.Fprintln(out, text)
		return nil
	},
}
