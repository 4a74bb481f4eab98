// Package ui holds the terminal-facing pieces shared by commands: prompts,
// notifications, progress spinners, version tables and the command panel.
//
// Prompts read numbered selections from an io.Reader so they work in pipes
// and tests. Dismissing a prompt (EOF or an empty answer where no default
// exists) yields ErrCancelled, which commands treat as a silent no-op.
package ui
