// Package workspace resolves the project folder commands operate on.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/config"
	"go.yaml.in/yaml/v3"
)

// ErrNoWorkspace is returned when no project folder can be determined.
var ErrNoWorkspace = errors.New("no workspace folder")

// markers identify a Flutter or fvm-managed project root.
var markers = []string{"pubspec.yaml", ".fvmrc", ".fvm"}

// Resolve returns the absolute workspace path. The explicit value (from the
// --workspace flag) wins, then the configured workspace key, then the
// nearest ancestor of the current directory holding a project marker.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		return checkDir(explicit)
	}
	if configured := config.Get(config.KeyWorkspace); configured != "" {
		return checkDir(configured)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	if root, ok := FindRoot(cwd); ok {
		return root, nil
	}
	return "", ErrNoWorkspace
}

// FindRoot walks up from start to the first directory containing a project
// marker.
func FindRoot(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		for _, m := range markers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func checkDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", abs, ErrNoWorkspace)
		}
		return "", fmt.Errorf("checking workspace %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory: %w", abs, ErrNoWorkspace)
	}
	return abs, nil
}

// ProjectName reads the package name from dir/pubspec.yaml. It returns an
// empty string when the manifest is missing or unnamed.
func ProjectName(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "pubspec.yaml"))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading pubspec.yaml: %w", err)
	}

	var manifest struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("parsing pubspec.yaml: %w", err)
	}
	return manifest.Name, nil
}
