package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/log"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/rename"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/ui"
)

func (d *Dispatcher) renamePackage(_ context.Context, req Request) error {
	root, err := d.Workspace()
	if err != nil {
		return &notice{msg: "Open a Flutter project", err: err}
	}

	oldID := rename.DetectPackageID(root)
	newID := req.PackageID
	if newID == "" {
		answer, err := d.Prompter.Input("New package ID", oldID)
		if err != nil {
			return err
		}
		newID = answer
	}
	newID = strings.TrimSpace(newID)
	if newID == "" || newID == oldID {
		log.Debug("package id unchanged", "id", oldID)
		return nil
	}
	if err := rename.ValidateIdentifier(newID); err != nil {
		return err
	}

	if !req.Force {
		dirty, err := dirtyFiles(root, []string{rename.GradlePath, rename.GradleKtsPath, rename.PbxprojPath, rename.PubspecPath})
		if err != nil {
			log.Warn("checking git status", "err", err)
		}
		if len(dirty) > 0 {
			q := fmt.Sprintf("Uncommitted changes in %s. Rename anyway?", strings.Join(dirty, ", "))
			ok, err := d.Prompter.Confirm(q)
			if err != nil {
				return err
			}
			if !ok {
				return ui.ErrCancelled
			}
		}
	}

	var res rename.Result
	err = d.Progress.Run(fmt.Sprintf("Renaming to %s…", newID), func() error {
		var rerr error
		res, rerr = rename.Rename(root, newID)
		return rerr
	})
	if len(res.Missing) > 0 {
		log.Info("skipped missing files", "files", res.Missing)
	}
	if err != nil {
		return &notice{msg: "Failed: " + err.Error(), err: err}
	}
	d.Notifier.Info("Package ID → " + newID)
	return nil
}
