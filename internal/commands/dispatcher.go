package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/fvm"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/log"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/ui"
)

// FVM is the subset of the fvm client the handlers drive.
type FVM interface {
	List(ctx context.Context) ([]fvm.Record, error)
	RawList(ctx context.Context) (string, error)
	Install(ctx context.Context, version string) error
	Use(ctx context.Context, dir, version string) error
	Remove(ctx context.Context, version string) error
	Global(ctx context.Context, version string) error
	FlutterCreate(ctx context.Context, path string) error
}

// StatusRefresher recomputes the status line.
type StatusRefresher interface {
	Refresh(ctx context.Context) string
}

// Deps are the collaborators handlers use.
type Deps struct {
	FVM      FVM
	Prompter ui.Prompter
	Notifier ui.Notifier
	Progress ui.Progress
	Status   StatusRefresher
	// Workspace resolves the open project folder.
	Workspace func() (string, error)
	// OpenFolder opens a directory in the editor.
	OpenFolder func(dir string) error
	// Out receives list output.
	Out io.Writer
}

// Request carries values that pre-fill prompts for non-interactive use.
// Zero values mean "ask".
type Request struct {
	Name      string
	Parent    string
	Version   string
	PackageID string
	Format    ListFormat
	// GitInit creates a repository in a new project.
	GitInit bool
	// Open and NoOpen answer the "Open folder?" question up front.
	Open   bool
	NoOpen bool
	// Force skips the uncommitted-changes confirmation before a rename.
	Force bool
}

// ListFormat selects the output of the list command.
type ListFormat string

const (
	FormatRaw   ListFormat = ""
	FormatJSON  ListFormat = "json"
	FormatTable ListFormat = "table"
)

// ReportedError wraps an error that has already been shown to the user.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

// notice is an error whose text is the user-facing message.
type notice struct {
	msg string
	err error
}

func (n *notice) Error() string { return n.msg }
func (n *notice) Unwrap() error { return n.err }

// Dispatcher runs commands by identifier.
type Dispatcher struct {
	Deps
}

// New creates a Dispatcher.
func New(d Deps) *Dispatcher {
	return &Dispatcher{Deps: d}
}

// Run executes the command id. A cancelled prompt returns nil. Any other
// failure is shown as one error notification and returned as a
// *ReportedError. The status line is refreshed and shown only after a
// mutating command succeeds.
func (d *Dispatcher) Run(ctx context.Context, id ID, req Request) error {
	info, ok := Describe(id)
	if !ok {
		return fmt.Errorf("unknown command %q", id)
	}
	log.Debug("running command", "id", id)

	var err error
	switch id {
	case NewProject:
		err = d.newProject(ctx, req)
	case UseVersion:
		err = d.useVersion(ctx, req)
	case InstallVersion:
		err = d.installVersion(ctx, req)
	case RemoveVersion:
		err = d.removeVersion(ctx, req)
	case List:
		err = d.list(ctx, req)
	case SetGlobal:
		err = d.setGlobal(ctx, req)
	case RenamePackage:
		err = d.renamePackage(ctx, req)
	}

	if errors.Is(err, ui.ErrCancelled) {
		log.Debug("command cancelled", "id", id)
		return nil
	}
	if err != nil {
		d.Notifier.Error(err.Error())
		return &ReportedError{Err: err}
	}
	if info.Mutating && d.Status != nil {
		d.Notifier.Status(d.Status.Refresh(ctx))
	}
	return nil
}

// pickVersion lists installed versions and asks for one. A preset version
// skips both steps.
func (d *Dispatcher) pickVersion(ctx context.Context, title, preset string) (string, error) {
	if preset != "" {
		return preset, nil
	}
	records, err := d.FVM.List(ctx)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", errors.New("no FVM versions installed")
	}
	sorted := fvm.SortByVersion(records)
	i, err := d.Prompter.Pick(title, fvm.Labels(sorted))
	if err != nil {
		return "", err
	}
	return sorted[i].Name, nil
}
