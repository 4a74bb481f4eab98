package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/fvm"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/log"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/ui"
)

// installNewLabel is the extra pick entry that installs a version first.
const installNewLabel = "+ Install new version…"

var dartPackageName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// initRepo creates the git repository of a new project; tests swap it.
var initRepo = initRepository

// ValidateProjectName checks name is a valid Dart package name.
func ValidateProjectName(name string) error {
	if !dartPackageName.MatchString(name) {
		return fmt.Errorf("invalid project name %q: use lowercase letters, digits and underscores, starting with a letter", name)
	}
	return nil
}

func (d *Dispatcher) newProject(ctx context.Context, req Request) error {
	name := req.Name
	if name == "" {
		answer, err := d.Prompter.Input("Project name (e.g. my_app)", "")
		if err != nil {
			return err
		}
		if name = strings.TrimSpace(answer); name == "" {
			return ui.ErrCancelled
		}
	}
	if err := ValidateProjectName(name); err != nil {
		return err
	}

	parent, err := d.askParent(req.Parent)
	if err != nil {
		return err
	}
	projectPath := filepath.Join(parent, name)
	if _, err := os.Stat(projectPath); err == nil {
		return fmt.Errorf("%s already exists", projectPath)
	}

	version, err := d.chooseProjectVersion(ctx, req.Version)
	if err != nil {
		return err
	}

	err = d.Progress.Run(fmt.Sprintf("Creating %s with FVM %s…", name, version), func() error {
		if err := d.FVM.FlutterCreate(ctx, projectPath); err != nil {
			return err
		}
		return d.FVM.Use(ctx, projectPath, version)
	})
	if err != nil {
		return err
	}

	d.Notifier.Info(fmt.Sprintf("Project %q created with FVM %s", name, version))
	if req.GitInit {
		if err := initRepo(projectPath); err != nil {
			log.Warn("could not initialize git repository", "dir", projectPath, "err", err)
		}
	}
	d.offerOpen(projectPath, req)
	return nil
}

// askParent resolves the folder the project is created in.
func (d *Dispatcher) askParent(preset string) (string, error) {
	parent := preset
	if parent == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		answer, err := d.Prompter.Input("Parent folder", cwd)
		if err != nil {
			return "", err
		}
		if parent = strings.TrimSpace(answer); parent == "" {
			return "", ui.ErrCancelled
		}
	}

	abs, err := filepath.Abs(parent)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", parent, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("parent folder: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("parent folder %s is not a directory", abs)
	}
	return abs, nil
}

// chooseProjectVersion picks an installed version or installs a new one.
// A preset version that is not installed yet is installed.
func (d *Dispatcher) chooseProjectVersion(ctx context.Context, preset string) (string, error) {
	records, err := d.FVM.List(ctx)
	if err != nil {
		return "", &notice{msg: "FVM not installed or unable to read versions.", err: err}
	}
	sorted := fvm.SortByVersion(records)

	if preset != "" {
		for _, r := range sorted {
			if r.Name == preset {
				return preset, nil
			}
		}
		version, err := d.askVersion(preset)
		if err != nil {
			return "", err
		}
		return version, d.install(ctx, version)
	}

	i, err := d.Prompter.Pick("Select Flutter version for the new project", append(fvm.Labels(sorted), installNewLabel))
	if err != nil {
		return "", err
	}
	if i < len(sorted) {
		return sorted[i].Name, nil
	}

	version, err := d.askVersion("")
	if err != nil {
		return "", err
	}
	return version, d.install(ctx, version)
}

// offerOpen opens the new project in the editor when asked to. Failures are
// logged; the project itself was created.
func (d *Dispatcher) offerOpen(dir string, req Request) {
	if req.NoOpen || d.OpenFolder == nil {
		return
	}
	open := req.Open
	if !open {
		var err error
		if open, err = d.Prompter.Confirm("Open folder?"); err != nil {
			log.Warn("reading answer", "err", err)
			return
		}
	}
	if !open {
		return
	}
	if err := d.OpenFolder(dir); err != nil {
		log.Warn("could not open editor", "dir", dir, "err", err)
	}
}
