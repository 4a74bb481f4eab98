package fvm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/log"
	"github.com/emmanuelsho9/fvm-vscode-extension/internal/runner"
)

// Mode selects how List obtains version records.
type Mode string

// Supported listing modes.
const (
	ModeAuto    Mode = "auto"
	ModeMachine Mode = "machine"
	ModeTable   Mode = "table"
)

// ParseMode converts a config value to a Mode. Empty means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeMachine:
		return ModeMachine, nil
	case ModeTable:
		return ModeTable, nil
	default:
		return "", fmt.Errorf("unknown listing mode %q: supported modes are %q, %q and %q", s, ModeAuto, ModeMachine, ModeTable)
	}
}

// Client runs fvm subcommands through an Executor.
type Client struct {
	exec runner.Executor
	bin  string
	mode Mode
}

// Option configures a Client.
type Option func(*Client)

// WithBinary sets the fvm executable name or path.
func WithBinary(bin string) Option {
	return func(c *Client) {
		if bin != "" {
			c.bin = bin
		}
	}
}

// WithMode sets the listing mode.
func WithMode(m Mode) Option {
	return func(c *Client) {
		c.mode = m
	}
}

// NewClient creates a Client that runs "fvm" in ModeAuto unless overridden.
func NewClient(exec runner.Executor, opts ...Option) *Client {
	c := &Client{exec: exec, bin: "fvm", mode: ModeAuto}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Binary returns the fvm executable the client invokes.
func (c *Client) Binary() string { return c.bin }

// Mode returns the configured listing mode.
func (c *Client) Mode() Mode { return c.mode }

// List returns the installed SDK versions. In ModeAuto the machine listing
// is tried first and the table is parsed when it fails; a missing fvm binary
// is reported immediately.
func (c *Client) List(ctx context.Context) ([]Record, error) {
	switch c.mode {
	case ModeMachine:
		return c.listMachine(ctx)
	case ModeTable:
		return c.listTable(ctx)
	}

	records, err := c.listMachine(ctx)
	if err == nil {
		return records, nil
	}
	if errors.Is(err, runner.ErrToolNotFound) {
		return nil, err
	}
	log.Warn("machine listing unavailable, parsing table output", "err", err)
	return c.listTable(ctx)
}

func (c *Client) listMachine(ctx context.Context) ([]Record, error) {
	out, err := c.run(ctx, "", "list", "--machine")
	if err != nil {
		return nil, err
	}
	return ParseMachine([]byte(out.Stdout))
}

func (c *Client) listTable(ctx context.Context) ([]Record, error) {
	out, err := c.RawList(ctx)
	if err != nil {
		return nil, err
	}
	return ParseTable(out), nil
}

// RawList returns `fvm list` stdout unmodified.
func (c *Client) RawList(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "", "list")
	if err != nil {
		return "", err
	}
	return out.Stdout, nil
}

// Install downloads and sets up version.
func (c *Client) Install(ctx context.Context, version string) error {
	_, err := c.run(ctx, "", "install", version)
	return err
}

// Use pins version for the project in dir.
func (c *Client) Use(ctx context.Context, dir, version string) error {
	_, err := c.run(ctx, dir, "use", version)
	return err
}

// Remove deletes an installed version.
func (c *Client) Remove(ctx context.Context, version string) error {
	_, err := c.run(ctx, "", "remove", version)
	return err
}

// Global makes version the process-wide default.
func (c *Client) Global(ctx context.Context, version string) error {
	_, err := c.run(ctx, "", "global", version)
	return err
}

// FlutterCreate scaffolds a new Flutter project at path.
func (c *Client) FlutterCreate(ctx context.Context, path string) error {
	_, err := c.run(ctx, "", "flutter", "create", path)
	return err
}

// Flutter runs an arbitrary framework subcommand (build, run, ...) in dir,
// streaming its output to stdout and stderr.
func (c *Client) Flutter(ctx context.Context, dir string, args []string, stdout, stderr io.Writer) error {
	_, err := c.exec.Execute(ctx, runner.Spec{
		Name:   c.bin,
		Args:   append([]string{"flutter"}, args...),
		Dir:    dir,
		Stdout: stdout,
		Stderr: stderr,
	})
	return err
}

// Version returns the fvm tool's own version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "", "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Stdout), nil
}

// FlutterVersion returns the first line of `fvm flutter --version`, which
// names the framework release the current directory resolves to.
func (c *Client) FlutterVersion(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "", "flutter", "--version")
	if err != nil {
		return "", err
	}
	first, _, _ := strings.Cut(strings.TrimSpace(out.Stdout), "\n")
	return strings.TrimSpace(first), nil
}

func (c *Client) run(ctx context.Context, dir string, args ...string) (*runner.Output, error) {
	return c.exec.Execute(ctx, runner.Spec{Name: c.bin, Args: args, Dir: dir})
}
