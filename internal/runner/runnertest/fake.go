// Package runnertest provides a scripted runner.Executor for tests.
package runnertest

import (
	"context"
	"fmt"
	"io"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/runner"
)

// Response is the canned result for one command line.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Err, when set, is returned instead of running anything
	// (e.g. runner.ErrToolNotFound).
	Err error
}

// Fake answers Execute calls from a table keyed by Spec.CommandLine().
type Fake struct {
	Responses map[string]Response
	Calls     []runner.Spec
}

// New returns a Fake with the given responses.
func New(responses map[string]Response) *Fake {
	if responses == nil {
		responses = map[string]Response{}
	}
	return &Fake{Responses: responses}
}

// Execute implements runner.Executor.
func (f *Fake) Execute(_ context.Context, spec runner.Spec) (*runner.Output, error) {
	f.Calls = append(f.Calls, spec)

	resp, ok := f.Responses[spec.CommandLine()]
	if !ok {
		return nil, fmt.Errorf("runnertest: unexpected command %q", spec.CommandLine())
	}
	if resp.Err != nil {
		return nil, resp.Err
	}

	if spec.Stdout != nil {
		io.WriteString(spec.Stdout, resp.Stdout)
	}
	if spec.Stderr != nil {
		io.WriteString(spec.Stderr, resp.Stderr)
	}

	out := &runner.Output{ExitCode: resp.ExitCode, Stdout: resp.Stdout, Stderr: resp.Stderr}
	if resp.ExitCode != 0 {
		return out, runner.NewToolError(spec, out)
	}
	return out, nil
}

// Ran reports whether commandLine was executed.
func (f *Fake) Ran(commandLine string) bool {
	for _, c := range f.Calls {
		if c.CommandLine() == commandLine {
			return true
		}
	}
	return false
}

// CallFor returns the first recorded spec matching commandLine.
func (f *Fake) CallFor(commandLine string) (runner.Spec, bool) {
	for _, c := range f.Calls {
		if c.CommandLine() == commandLine {
			return c, true
		}
	}
	return runner.Spec{}, false
}
