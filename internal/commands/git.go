package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// initRepository creates an empty git repository in dir.
func initRepository(dir string) error {
	if _, err := git.PlainInit(dir, false); err != nil {
		return fmt.Errorf("initializing git repository: %w", err)
	}
	return nil
}

// dirtyFiles returns those of paths (relative to root) that have staged,
// unstaged or untracked changes. A root outside any repository has none.
func dirtyFiles(root string, paths []string) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}

	top := wt.Filesystem.Root()
	var dirty []string
	for _, p := range paths {
		rel, err := filepath.Rel(top, filepath.Join(root, p))
		if err != nil {
			continue
		}
		fs, ok := status[filepath.ToSlash(rel)]
		if !ok {
			continue
		}
		if fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified {
			dirty = append(dirty, p)
		}
	}
	return dirty, nil
}
