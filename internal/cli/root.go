package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/branding"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/commands"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/config"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/editor"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/fvm"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/log"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/runner"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/status"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/ui"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	workspaceFlag string
	verboseFlag   bool
)

// newExecutor builds the process runner; tests swap in a fake.
var newExecutor = func() runner.Executor { return runner.Exec{} }

// app holds the collaborators built for the running command.
var app *appState

type appState struct {
	client     *fvm.Client
	indicator  *status.Indicator
	editor     string
	dispatcher *commands.Dispatcher
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "Project folder to operate on (default: nearest Flutter project)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Log external commands to stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` switches Flutter SDK versions through fvm, creates projects pinned to a
version and renames a project's application identifier across platforms.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		log.Init(cmd.ErrOrStderr(), verboseFlag || config.GetBool(config.KeyVerbose))
		app = newApp(cmd)
		return nil
	},
}

func newApp(cmd *cobra.Command) *appState {
	mode, err := fvm.ParseMode(config.Get(config.KeyListMode))
	if err != nil {
		log.Warn("ignoring list_mode setting", "err", err)
		mode = fvm.ModeAuto
	}
	client := fvm.NewClient(newExecutor(),
		fvm.WithBinary(config.Get(config.KeyFVMBin)),
		fvm.WithMode(mode),
	)
	indicator := status.New(client, config.Dir())
	editorCmd := config.Get(config.KeyEditor)

	return &appState{
		client:    client,
		indicator: indicator,
		editor:    editorCmd,
		dispatcher: commands.New(commands.Deps{
			FVM:       client,
			Prompter:  ui.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout()),
			Notifier:  ui.NewNotifier(cmd.OutOrStdout(), cmd.ErrOrStderr()),
			Progress:  ui.NewSpinner(cmd.ErrOrStderr()),
			Status:    indicator,
			Workspace: resolveWorkspace,
			OpenFolder: func(dir string) error {
				ed, err := editor.Parse(editorCmd)
				if err != nil {
					return err
				}
				return ed.OpenFolder(dir)
			},
			Out: cmd.OutOrStdout(),
		}),
	}
}

func resolveWorkspace() (string, error) {
	return workspace.Resolve(workspaceFlag)
}

// dispatch runs one of the seven FVM commands.
func dispatch(cmd *cobra.Command, id commands.ID, req commands.Request) error {
	return app.dispatcher.Run(cmd.Context(), id, req)
}

// firstArg returns args[0] or "".
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// Execute runs the root command with build info injected via ldflags.
// Errors already shown as notifications are not printed again.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if app != nil {
		if cerr := app.indicator.Close(); cerr != nil {
			log.Warn("saving status cache", "err", cerr)
		}
	}

	var reported *commands.ReportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
