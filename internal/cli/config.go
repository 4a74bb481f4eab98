package cli

import (
	"fmt"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/branding"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/config"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/fvm"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: fmt.Sprintf(`Read and write settings stored at ~/%s/config.yaml.

Keys: %s=<path to fvm>, %s=auto|machine|table, %s=<editor command>,
%s=<default project folder>, %s=true|false.
Every key can be overridden from the environment, e.g. %s=~/src.`,
		branding.HomeDir(), config.KeyFVMBin, config.KeyListMode, config.KeyEditor,
		config.KeyWorkspace, config.KeyVerbose, branding.EnvVar(config.KeyWorkspace)),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if key == config.KeyListMode {
			if _, err := fvm.ParseMode(value); err != nil {
				return err
			}
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnown(args[0]) {
			return fmt.Errorf("unknown key %q (known keys: %v)", args[0], config.Keys)
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
