package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/fvm"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/runner"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/runner/runnertest"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/ui/uitest"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/workspace"
)

const machineList = `[{"name":"3.22.0","isGlobal":false},{"name":"3.24.0","channel":"stable","isGlobal":true}]`

type countingStatus struct{ refreshes int }

func (s *countingStatus) Refresh(context.Context) string {
	s.refreshes++
	return "FVM"
}

type harness struct {
	fake     *runnertest.Fake
	prompter *uitest.Prompter
	notifier *uitest.Notifier
	progress *uitest.Progress
	status   *countingStatus
	out      *bytes.Buffer
	opened   []string
	d        *Dispatcher
}

// newHarness wires a Dispatcher to a fake fvm. An empty ws means no folder
// is open.
func newHarness(responses map[string]runnertest.Response, ws string, answers ...uitest.Answer) *harness {
	h := &harness{
		fake:     runnertest.New(responses),
		prompter: uitest.NewPrompter(answers...),
		notifier: &uitest.Notifier{},
		progress: &uitest.Progress{},
		status:   &countingStatus{},
		out:      &bytes.Buffer{},
	}
	h.d = New(Deps{
		FVM:      fvm.NewClient(h.fake),
		Prompter: h.prompter,
		Notifier: h.notifier,
		Progress: h.progress,
		Status:   h.status,
		Workspace: func() (string, error) {
			if ws == "" {
				return "", workspace.ErrNoWorkspace
			}
			return ws, nil
		},
		OpenFolder: func(dir string) error {
			h.opened = append(h.opened, dir)
			return nil
		},
		Out: h.out,
	})
	return h
}

func (h *harness) run(t *testing.T, id ID, req Request) error {
	t.Helper()
	return h.d.Run(context.Background(), id, req)
}

func expectReported(t *testing.T, err error) {
	t.Helper()
	var rep *ReportedError
	if !errors.As(err, &rep) {
		t.Fatalf("expected *ReportedError, got %v", err)
	}
}

func TestUseVersion(t *testing.T) {
	ws := t.TempDir()
	h := newHarness(map[string]runnertest.Response{
		"fvm list --machine": {Stdout: machineList},
		"fvm use 3.22.0":     {},
	}, ws, uitest.Answer{Pick: "3.22.0"})

	if err := h.run(t, UseVersion, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spec, ok := h.fake.CallFor("fvm use 3.22.0")
	if !ok || spec.Dir != ws {
		t.Errorf("use should run in the workspace, got %+v", spec)
	}
	if got := h.prompter.Offered[0]; strings.Join(got, ",") != "3.24.0 (stable, global),3.22.0" {
		t.Errorf("offered %v", got)
	}
	if len(h.notifier.Infos) != 1 || h.notifier.Infos[0] != "FVM using 3.22.0" {
		t.Errorf("Infos = %v", h.notifier.Infos)
	}
	if h.status.refreshes != 1 {
		t.Errorf("status refreshed %d times", h.status.refreshes)
	}
	if len(h.notifier.Statuses) != 1 || h.notifier.Statuses[0] != "FVM" {
		t.Errorf("refreshed status should be shown once, got %v", h.notifier.Statuses)
	}
}

func TestUseVersion_NoWorkspace(t *testing.T) {
	h := newHarness(nil, "")

	err := h.run(t, UseVersion, Request{})
	expectReported(t, err)
	if !errors.Is(err, workspace.ErrNoWorkspace) {
		t.Errorf("error should wrap ErrNoWorkspace: %v", err)
	}
	if len(h.fake.Calls) != 0 {
		t.Errorf("no process should be spawned, got %d calls", len(h.fake.Calls))
	}
	if len(h.notifier.Errors) != 1 || h.notifier.Errors[0] != "Open a folder first" {
		t.Errorf("Errors = %v", h.notifier.Errors)
	}
	if h.status.refreshes != 0 {
		t.Error("status must not refresh on failure")
	}
}

func TestInstallVersion(t *testing.T) {
	h := newHarness(map[string]runnertest.Response{
		"fvm install 3.35.7": {},
	}, "", uitest.Answer{Text: "3.35.7"})

	if err := h.run(t, InstallVersion, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.progress.Titles) != 1 || h.progress.Titles[0] != "Installing 3.35.7…" {
		t.Errorf("progress = %v", h.progress.Titles)
	}
	if h.notifier.Infos[0] != "3.35.7 installed" {
		t.Errorf("Infos = %v", h.notifier.Infos)
	}
	if h.status.refreshes != 1 {
		t.Errorf("status refreshed %d times", h.status.refreshes)
	}
}

func TestInstallVersion_Cancel(t *testing.T) {
	tests := []struct {
		name   string
		answer uitest.Answer
	}{
		{"dismissed", uitest.Answer{Cancel: true}},
		{"blank", uitest.Answer{Text: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(nil, "", tt.answer)

			if err := h.run(t, InstallVersion, Request{}); err != nil {
				t.Fatalf("cancel should be silent, got %v", err)
			}
			if len(h.fake.Calls) != 0 {
				t.Error("no process should be spawned")
			}
			if h.notifier.Count() != 0 {
				t.Errorf("no notification expected, got %+v", h.notifier)
			}
			if h.status.refreshes != 0 {
				t.Error("status must not refresh on cancel")
			}
		})
	}
}

func TestInstallVersion_ToolFailure(t *testing.T) {
	h := newHarness(map[string]runnertest.Response{
		"fvm install 9.9.9": {ExitCode: 1, Stderr: "Flutter SDK: 9.9.9 is not a valid version"},
	}, "", uitest.Answer{Text: "9.9.9"})

	err := h.run(t, InstallVersion, Request{})
	expectReported(t, err)

	var te *runner.ToolError
	if !errors.As(err, &te) {
		t.Errorf("expected a *runner.ToolError inside, got %v", err)
	}
	if len(h.notifier.Errors) != 1 || !strings.Contains(h.notifier.Errors[0], "9.9.9 is not a valid version") {
		t.Errorf("Errors = %v", h.notifier.Errors)
	}
	if len(h.notifier.Infos) != 0 {
		t.Errorf("Infos = %v", h.notifier.Infos)
	}
	if h.status.refreshes != 0 {
		t.Error("status must not refresh on failure")
	}
}

func TestInstallVersion_Invalid(t *testing.T) {
	h := newHarness(nil, "")

	expectReported(t, h.run(t, InstallVersion, Request{Version: "latest-ish"}))
	if len(h.fake.Calls) != 0 {
		t.Error("invalid versions must not reach fvm")
	}
	if len(h.notifier.Errors) != 1 {
		t.Errorf("Errors = %v", h.notifier.Errors)
	}
}

func TestRemoveAndGlobal(t *testing.T) {
	tests := []struct {
		id       ID
		cmd      string
		wantInfo string
	}{
		{RemoveVersion, "fvm remove 3.22.0", "3.22.0 removed"},
		{SetGlobal, "fvm global 3.22.0", "Global → 3.22.0"},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			h := newHarness(map[string]runnertest.Response{
				"fvm list --machine": {Stdout: machineList},
				tt.cmd:               {},
			}, "", uitest.Answer{Pick: "3.22.0"})

			if err := h.run(t, tt.id, Request{}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !h.fake.Ran(tt.cmd) {
				t.Errorf("%s not run", tt.cmd)
			}
			if len(h.notifier.Infos) != 1 || h.notifier.Infos[0] != tt.wantInfo {
				t.Errorf("Infos = %v", h.notifier.Infos)
			}
			if h.status.refreshes != 1 {
				t.Errorf("status refreshed %d times", h.status.refreshes)
			}
		})
	}
}

func TestSetGlobal_PickCancelled(t *testing.T) {
	h := newHarness(map[string]runnertest.Response{
		"fvm list --machine": {Stdout: machineList},
	}, "", uitest.Answer{Cancel: true})

	if err := h.run(t, SetGlobal, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.notifier.Count() != 0 || h.status.refreshes != 0 {
		t.Errorf("cancel should be silent: %+v, refreshes=%d", h.notifier, h.status.refreshes)
	}
}

func TestList(t *testing.T) {
	raw := "┌────────┐\n│ 3.24.0 │\n└────────┘\n"

	t.Run("raw", func(t *testing.T) {
		h := newHarness(map[string]runnertest.Response{"fvm list": {Stdout: raw}}, "")
		if err := h.run(t, List, Request{}); err != nil {
			t.Fatal(err)
		}
		if h.out.String() != raw {
			t.Errorf("output = %q, want unmodified %q", h.out.String(), raw)
		}
		if h.status.refreshes != 0 {
			t.Error("list is not mutating")
		}
	})

	t.Run("json", func(t *testing.T) {
		h := newHarness(map[string]runnertest.Response{"fvm list --machine": {Stdout: machineList}}, "")
		if err := h.run(t, List, Request{Format: FormatJSON}); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(h.out.String(), `"isGlobal": true`) {
			t.Errorf("output = %s", h.out.String())
		}
	})

	t.Run("table", func(t *testing.T) {
		h := newHarness(map[string]runnertest.Response{"fvm list --machine": {Stdout: machineList}}, "")
		if err := h.run(t, List, Request{Format: FormatTable}); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(h.out.String(), "3.24.0") {
			t.Errorf("output = %s", h.out.String())
		}
	})

	t.Run("not installed", func(t *testing.T) {
		h := newHarness(map[string]runnertest.Response{
			"fvm list": {Err: fmt.Errorf("fvm: %w", runner.ErrToolNotFound)},
		}, "")
		expectReported(t, h.run(t, List, Request{}))
		if len(h.notifier.Errors) != 1 || h.notifier.Errors[0] != "FVM not installed" {
			t.Errorf("Errors = %v", h.notifier.Errors)
		}
	})
}

func TestNewProject(t *testing.T) {
	parent := t.TempDir()
	path := filepath.Join(parent, "my_app")
	h := newHarness(map[string]runnertest.Response{
		"fvm list --machine":          {Stdout: machineList},
		"fvm flutter create " + path: {},
		"fvm use 3.24.0":              {},
	}, "",
		uitest.Answer{Text: "my_app"},
		uitest.Answer{Text: parent},
		uitest.Answer{Pick: "3.24.0 (stable, global)"},
		uitest.Answer{Confirm: true},
	)

	if err := h.run(t, NewProject, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spec, ok := h.fake.CallFor("fvm use 3.24.0")
	if !ok || spec.Dir != path {
		t.Errorf("use should run in the new project, got %+v", spec)
	}
	if h.fake.Calls[1].CommandLine() != "fvm flutter create "+path {
		t.Errorf("create should run before use, calls = %v", h.fake.Calls)
	}
	if want := `Project "my_app" created with FVM 3.24.0`; len(h.notifier.Infos) != 1 || h.notifier.Infos[0] != want {
		t.Errorf("Infos = %v", h.notifier.Infos)
	}
	if len(h.opened) != 1 || h.opened[0] != path {
		t.Errorf("opened = %v", h.opened)
	}
	if h.status.refreshes != 1 {
		t.Errorf("status refreshed %d times", h.status.refreshes)
	}
}

func TestNewProject_InstallNew(t *testing.T) {
	parent := t.TempDir()
	path := filepath.Join(parent, "shop")
	h := newHarness(map[string]runnertest.Response{
		"fvm list --machine":          {Stdout: machineList},
		"fvm install 3.35.7":          {},
		"fvm flutter create " + path: {},
		"fvm use 3.35.7":              {},
	}, "",
		uitest.Answer{Pick: installNewLabel},
		uitest.Answer{Text: "3.35.7"},
		uitest.Answer{Confirm: false},
	)

	err := h.run(t, NewProject, Request{Name: "shop", Parent: parent})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.fake.Ran("fvm install 3.35.7") {
		t.Error("new version was not installed")
	}
	if len(h.progress.Titles) != 2 {
		t.Errorf("progress = %v", h.progress.Titles)
	}
	if len(h.opened) != 0 {
		t.Error("folder should not open when declined")
	}
}

func TestNewProject_ListFailure(t *testing.T) {
	h := newHarness(map[string]runnertest.Response{
		"fvm list --machine": {Err: fmt.Errorf("fvm: %w", runner.ErrToolNotFound)},
	}, "")

	err := h.run(t, NewProject, Request{Name: "my_app", Parent: t.TempDir(), NoOpen: true})
	expectReported(t, err)
	if h.notifier.Errors[0] != "FVM not installed or unable to read versions." {
		t.Errorf("Errors = %v", h.notifier.Errors)
	}
}

func TestNewProject_InvalidName(t *testing.T) {
	h := newHarness(nil, "")
	expectReported(t, h.run(t, NewProject, Request{Name: "My-App"}))
	if len(h.fake.Calls) != 0 {
		t.Error("no process should be spawned")
	}
}

func TestNewProject_CreateFails(t *testing.T) {
	parent := t.TempDir()
	path := filepath.Join(parent, "my_app")
	h := newHarness(map[string]runnertest.Response{
		"fvm list --machine":          {Stdout: machineList},
		"fvm flutter create " + path: {ExitCode: 1, Stderr: "Could not create project"},
	}, "")

	err := h.run(t, NewProject, Request{Name: "my_app", Parent: parent, Version: "3.24.0", NoOpen: true})
	expectReported(t, err)
	if h.fake.Ran("fvm use 3.24.0") {
		t.Error("use must not run after a failed create")
	}
	if !strings.Contains(h.notifier.Errors[0], "Could not create project") {
		t.Errorf("Errors = %v", h.notifier.Errors)
	}
	if h.status.refreshes != 0 {
		t.Error("status must not refresh on failure")
	}
}

func TestNewProject_GitInitFailure(t *testing.T) {
	parent := t.TempDir()
	path := filepath.Join(parent, "my_app")
	h := newHarness(map[string]runnertest.Response{
		"fvm list --machine":          {Stdout: machineList},
		"fvm flutter create " + path: {},
		"fvm use 3.24.0":              {},
	}, "")

	prev := initRepo
	initRepo = func(string) error { return errors.New("permission denied") }
	t.Cleanup(func() { initRepo = prev })

	err := h.run(t, NewProject, Request{Name: "my_app", Parent: parent, Version: "3.24.0", GitInit: true, NoOpen: true})
	if err != nil {
		t.Fatalf("git failure must not fail the command: %v", err)
	}
	if want := `Project "my_app" created with FVM 3.24.0`; len(h.notifier.Infos) != 1 || h.notifier.Infos[0] != want {
		t.Errorf("Infos = %v", h.notifier.Infos)
	}
	if len(h.notifier.Errors) != 0 {
		t.Errorf("Errors = %v", h.notifier.Errors)
	}
	if h.status.refreshes != 1 {
		t.Errorf("status refreshed %d times", h.status.refreshes)
	}
}

func writeProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRenamePackage_SameID(t *testing.T) {
	root := t.TempDir()
	gradle := "android {\n  defaultConfig {\n    applicationId \"com.example.shop\"\n  }\n}\n"
	writeProjectFile(t, root, "android/app/build.gradle", gradle)

	h := newHarness(nil, root, uitest.Answer{})
	if err := h.run(t, RenamePackage, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.prompter.Prompts[0] != "New package ID" {
		t.Errorf("prompts = %v", h.prompter.Prompts)
	}
	if h.notifier.Count() != 0 {
		t.Errorf("no-op rename should be silent, got %+v", h.notifier)
	}
	if len(h.progress.Titles) != 0 {
		t.Error("no-op rename should not start progress")
	}
}

func TestRenamePackage_ManifestOnly(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "pubspec.yaml", "name: old\n")

	h := newHarness(nil, root)
	if err := h.run(t, RenamePackage, Request{PackageID: "io.acme.shop"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "pubspec.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "name: shop\n" {
		t.Errorf("pubspec = %q", data)
	}
	if len(h.notifier.Infos) != 1 || h.notifier.Infos[0] != "Package ID → io.acme.shop" {
		t.Errorf("Infos = %v", h.notifier.Infos)
	}
	if h.progress.Titles[0] != "Renaming to io.acme.shop…" {
		t.Errorf("progress = %v", h.progress.Titles)
	}
}

func TestRenamePackage_NoWorkspace(t *testing.T) {
	h := newHarness(nil, "")
	expectReported(t, h.run(t, RenamePackage, Request{PackageID: "io.acme.shop"}))
	if h.notifier.Errors[0] != "Open a Flutter project" {
		t.Errorf("Errors = %v", h.notifier.Errors)
	}
}

func TestRenamePackage_InvalidID(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "pubspec.yaml", "name: old\n")

	h := newHarness(nil, root)
	expectReported(t, h.run(t, RenamePackage, Request{PackageID: "shop"}))
	data, _ := os.ReadFile(filepath.Join(root, "pubspec.yaml"))
	if string(data) != "name: old\n" {
		t.Error("invalid identifiers must not touch files")
	}
}

func TestRun_UnknownID(t *testing.T) {
	h := newHarness(nil, "")
	if err := h.run(t, ID("explode"), Request{}); err == nil {
		t.Error("expected error for unknown command")
	}
	if h.notifier.Count() != 0 {
		t.Error("unknown commands are not user notifications")
	}
}
