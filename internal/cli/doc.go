// Package cli defines the Cobra command tree for fvmctl. Each file in this
// package registers one top-level command with the root command. The seven
// FVM operations delegate to internal/commands; this package only handles
// flag parsing, wiring and output.
package cli
