// Package status maintains the one-line summary of the global SDK version
// ("FVM 3.24.0"). The Indicator is created once per process, seeded from the
// on-disk cache, refreshed after mutating commands and persisted on Close.
package status

import (
	"context"
	"sync"
	"time"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/branding"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/fvm"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/log"
)

// Lister is the part of the fvm client the indicator needs.
type Lister interface {
	List(ctx context.Context) ([]fvm.Record, error)
}

// Indicator holds the current status text.
type Indicator struct {
	mu     sync.Mutex
	lister Lister
	dir    string
	cache  Cache
	dirty  bool
}

// New creates an Indicator backed by the cache in dir. A missing or
// unreadable cache starts the indicator at the bare label.
func New(lister Lister, dir string) *Indicator {
	ind := &Indicator{
		lister: lister,
		dir:    dir,
		cache:  Cache{Text: Format("")},
	}
	c, err := LoadCache(dir)
	if err != nil {
		log.Warn("ignoring status cache", "err", err)
	}
	if c != nil && c.Text != "" {
		ind.cache = *c
	}
	return ind
}

// Format renders the status line for a global version name. An empty name
// yields the bare label.
func Format(global string) string {
	if global == "" {
		return branding.StatusLabel()
	}
	return branding.StatusLabel() + " " + global
}

// Text returns the current status line.
func (i *Indicator) Text() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.cache.Text
}

// Global returns the global version shown, or "".
func (i *Indicator) Global() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.cache.Global
}

// Refresh lists versions and recomputes the text. A listing failure shows
// the bare label and is not returned to the caller.
func (i *Indicator) Refresh(ctx context.Context) string {
	global := ""
	records, err := i.lister.List(ctx)
	if err != nil {
		log.Debug("status refresh failed", "err", err)
	} else if g, ok := fvm.FindGlobal(records); ok {
		global = g.Name
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.cache = Cache{Text: Format(global), Global: global, UpdatedAt: time.Now()}
	i.dirty = true
	return i.cache.Text
}

// Close persists the status text if it changed since New.
func (i *Indicator) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.dirty {
		return nil
	}
	if err := SaveCache(i.dir, &i.cache); err != nil {
		return err
	}
	i.dirty = false
	return nil
}
