package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrToolNotFound is returned when the requested binary is not on PATH.
var ErrToolNotFound = errors.New("tool not found")

// Spec describes one external process invocation.
type Spec struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Stdout and Stderr, when set, receive the streams as they are produced
	// in addition to being captured in Output.
	Stdout io.Writer
	Stderr io.Writer
}

// CommandLine renders the invocation for messages and logs.
func (s Spec) CommandLine() string {
	if len(s.Args) == 0 {
		return s.Name
	}
	return s.Name + " " + strings.Join(s.Args, " ")
}

// Output captures the result of a finished process.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor runs external processes.
type Executor interface {
	// Execute runs spec to completion. A non-zero exit is reported as a
	// *ToolError alongside the captured Output.
	Execute(ctx context.Context, spec Spec) (*Output, error)
}

// ToolError reports a tool that ran but exited non-zero.
type ToolError struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	if detail := e.Detail(); detail != "" {
		msg += "\n" + detail
	}
	return msg
}

// Detail returns the tool's stdout and stderr, trimmed and joined.
func (e *ToolError) Detail() string {
	var parts []string
	if s := strings.TrimSpace(e.Stdout); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n")
}

// NewToolError builds the error returned for a non-zero exit.
func NewToolError(spec Spec, out *Output) *ToolError {
	return &ToolError{
		Command:  spec.CommandLine(),
		ExitCode: out.ExitCode,
		Stdout:   out.Stdout,
		Stderr:   out.Stderr,
	}
}
