// Package runner executes external command-line tools on behalf of the CLI.
// The Executor interface keeps callers testable; Exec is the os/exec-backed
// implementation. A missing binary yields ErrToolNotFound and a non-zero exit
// yields a *ToolError that carries the tool's stdout and stderr verbatim.
package runner
