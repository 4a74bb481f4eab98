// Package commands implements the seven user-facing FVM operations as
// handlers over injected collaborators (fvm client, prompts, notifications,
// progress, status line, editor). The CLI and the panel both dispatch here
// by command identifier.
//
// A handler either returns nil after showing its own success notification,
// returns nil silently (cancelled prompt or no-op), or returns an error that
// Dispatcher.Run turns into exactly one error notification.
package commands
