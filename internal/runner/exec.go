package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/log"
)

// Exec runs processes with os/exec.
type Exec struct{}

// Execute resolves spec.Name on PATH, runs it, and captures both streams.
func (Exec) Execute(ctx context.Context, spec Spec) (*Output, error) {
	bin, err := exec.LookPath(spec.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Name, ErrToolNotFound)
	}

	cmd := exec.CommandContext(ctx, bin, spec.Args...)
	cmd.Dir = spec.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = teeTo(&stdoutBuf, spec.Stdout)
	cmd.Stderr = teeTo(&stderrBuf, spec.Stderr)

	log.Debug("running", "cmd", spec.CommandLine(), "dir", spec.Dir)
	err = cmd.Run()

	out := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			log.Debug("exited", "cmd", spec.CommandLine(), "code", out.ExitCode)
			return out, NewToolError(spec, out)
		}
		return out, fmt.Errorf("executing %s: %w", spec.CommandLine(), err)
	}

	return out, nil
}

func teeTo(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(w, buf)
}
