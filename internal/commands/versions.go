package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/fvm"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/runner"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/ui"
)

func (d *Dispatcher) useVersion(ctx context.Context, req Request) error {
	dir, err := d.Workspace()
	if err != nil {
		return &notice{msg: "Open a folder first", err: err}
	}

	version, err := d.pickVersion(ctx, "Select FVM version to use for this project", req.Version)
	if err != nil {
		return err
	}
	if err := d.FVM.Use(ctx, dir, version); err != nil {
		return err
	}
	d.Notifier.Info("FVM using " + version)
	return nil
}

func (d *Dispatcher) installVersion(ctx context.Context, req Request) error {
	version, err := d.askVersion(req.Version)
	if err != nil {
		return err
	}
	if err := d.install(ctx, version); err != nil {
		return err
	}
	d.Notifier.Info(version + " installed")
	return nil
}

// askVersion prompts for a version to install. An empty answer cancels.
func (d *Dispatcher) askVersion(preset string) (string, error) {
	version := preset
	if version == "" {
		answer, err := d.Prompter.Input("Flutter version (e.g. 3.35.7, stable)", "")
		if err != nil {
			return "", err
		}
		version = strings.TrimSpace(answer)
		if version == "" {
			return "", ui.ErrCancelled
		}
	}
	if err := fvm.ValidateVersionSpec(version); err != nil {
		return "", err
	}
	return strings.TrimSpace(version), nil
}

func (d *Dispatcher) install(ctx context.Context, version string) error {
	return d.Progress.Run(fmt.Sprintf("Installing %s…", version), func() error {
		return d.FVM.Install(ctx, version)
	})
}

func (d *Dispatcher) removeVersion(ctx context.Context, req Request) error {
	version, err := d.pickVersion(ctx, "Select version to remove", req.Version)
	if err != nil {
		return err
	}
	if err := d.FVM.Remove(ctx, version); err != nil {
		return err
	}
	d.Notifier.Info(version + " removed")
	return nil
}

func (d *Dispatcher) setGlobal(ctx context.Context, req Request) error {
	version, err := d.pickVersion(ctx, "Select global version", req.Version)
	if err != nil {
		return err
	}
	if err := d.FVM.Global(ctx, version); err != nil {
		return err
	}
	d.Notifier.Info("Global → " + version)
	return nil
}

// list writes the installed versions to Out. The raw format passes the
// tool's output through untouched.
func (d *Dispatcher) list(ctx context.Context, req Request) error {
	err := d.writeList(ctx, d.Out, req.Format)
	if errors.Is(err, runner.ErrToolNotFound) {
		return &notice{msg: "FVM not installed", err: err}
	}
	return err
}

func (d *Dispatcher) writeList(ctx context.Context, w io.Writer, format ListFormat) error {
	switch format {
	case FormatRaw:
		raw, err := d.FVM.RawList(ctx)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, raw)
		return err
	case FormatJSON:
		records, err := d.FVM.List(ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case FormatTable:
		records, err := d.FVM.List(ctx)
		if err != nil {
			return err
		}
		ui.RenderVersions(w, records)
		return nil
	default:
		return fmt.Errorf("unknown list format %q", format)
	}
}
