package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/editor"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/fvm"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/log"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/workspace"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that fvm, Flutter and the editor are available",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd.Context(), cmd.OutOrStdout(), app.client, app.editor, app.indicator.Global())
	},
}

// probe is one doctor check. ok lines print "[ OK ]", others "[MISS]".
type probe struct {
	name   string
	ok     bool
	detail string
}

func (p probe) String() string {
	mark := "[ OK ]"
	if !p.ok {
		mark = "[MISS]"
	}
	return fmt.Sprintf("  %s %s: %s", mark, p.name, p.detail)
}

// runDoctor probes the tools concurrently and prints them in a fixed order.
// lastGlobal is the global version recorded by the last status refresh.
func runDoctor(ctx context.Context, w io.Writer, client *fvm.Client, editorCmd, lastGlobal string) error {
	probes := make([]probe, 3)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		probes[0] = probeFVM(ctx, client)
		return nil
	})
	g.Go(func() error {
		probes[1] = probeFlutter(ctx, client)
		return nil
	})
	g.Go(func() error {
		probes[2] = probeEditor(editorCmd)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintln(w, "Tools:")
	for _, p := range probes {
		fmt.Fprintln(w, p)
	}

	fmt.Fprintln(w, "Settings:")
	ws, err := resolveWorkspace()
	if err != nil {
		fmt.Fprintf(w, "  [INFO] workspace: none (%v)\n", err)
	} else {
		fmt.Fprintf(w, "  [INFO] workspace: %s\n", describeWorkspace(ws))
	}
	fmt.Fprintf(w, "  [INFO] list mode: %s\n", client.Mode())
	if lastGlobal == "" {
		lastGlobal = "none recorded"
	}
	fmt.Fprintf(w, "  [INFO] last global version: %s\n", lastGlobal)
	return nil
}

// describeWorkspace appends the pubspec package name when there is one.
func describeWorkspace(dir string) string {
	name, err := workspace.ProjectName(dir)
	if err != nil {
		log.Warn("reading project name", "dir", dir, "err", err)
		return dir
	}
	if name == "" {
		return dir
	}
	return fmt.Sprintf("%s (project %s)", dir, name)
}

func probeFVM(ctx context.Context, client *fvm.Client) probe {
	p := probe{name: "fvm"}
	path, err := exec.LookPath(client.Binary())
	if err != nil {
		p.detail = client.Binary() + " not found"
		return p
	}
	version, err := client.Version(ctx)
	if err != nil {
		p.detail = fmt.Sprintf("%s found but not runnable: %v", path, err)
		return p
	}
	p.ok = true
	p.detail = fmt.Sprintf("%s (%s)", version, path)
	return p
}

func probeFlutter(ctx context.Context, client *fvm.Client) probe {
	p := probe{name: "flutter"}
	version, err := client.FlutterVersion(ctx)
	if err != nil {
		p.detail = "no SDK resolved through fvm"
		return p
	}
	p.ok = true
	p.detail = version
	return p
}

func probeEditor(editorCmd string) probe {
	p := probe{name: "editor"}
	ed, err := editor.Parse(editorCmd)
	if err != nil {
		p.detail = err.Error()
		return p
	}
	path, err := ed.Find()
	if err != nil {
		p.detail = ed.Command + " not found"
		return p
	}
	p.ok = true
	p.detail = path
	return p
}
