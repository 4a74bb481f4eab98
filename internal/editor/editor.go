// Package editor opens project folders in the user's editor.
package editor

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/log"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/runner"
)

// newWindowEditors accept --new-window to open a folder in a fresh window.
var newWindowEditors = map[string]bool{
	"code":          true,
	"code-insiders": true,
	"codium":        true,
	"cursor":        true,
	"windsurf":      true,
}

// Editor is a configured editor command line such as "code" or "idea -e".
type Editor struct {
	Command string
	Args    []string

	start func(*exec.Cmd) error
}

// Parse splits the configured editor setting into command and arguments.
func Parse(cmdline string) (Editor, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return Editor{}, fmt.Errorf("no editor configured")
	}
	return Editor{Command: fields[0], Args: fields[1:]}, nil
}

// Find returns the resolved path of the editor binary.
func (e Editor) Find() (string, error) {
	path, err := exec.LookPath(e.Command)
	if err != nil {
		return "", fmt.Errorf("%s: %w", e.Command, runner.ErrToolNotFound)
	}
	return path, nil
}

// OpenArgs returns the arguments used to open dir.
func (e Editor) OpenArgs(dir string) []string {
	args := append([]string{}, e.Args...)
	if newWindowEditors[strings.TrimSuffix(filepath.Base(e.Command), ".cmd")] {
		args = append(args, "--new-window")
	}
	return append(args, dir)
}

// OpenFolder starts the editor on dir without waiting for it to exit.
func (e Editor) OpenFolder(dir string) error {
	bin, err := e.Find()
	if err != nil {
		return err
	}

	cmd := exec.Command(bin, e.OpenArgs(dir)...)
	log.Debug("opening editor", "cmd", bin, "args", cmd.Args[1:])

	start := e.start
	if start == nil {
		start = (*exec.Cmd).Start
	}
	if err := start(cmd); err != nil {
		return fmt.Errorf("starting %s: %w", e.Command, err)
	}
	if cmd.Process != nil {
		// Detach: the editor outlives this process.
		return cmd.Process.Release()
	}
	return nil
}
