// Package fvm drives the Flutter Version Manager command-line tool and turns
// its version listing into Records. The machine-readable listing
// (`fvm list --machine`) is authoritative; the human table printed by
// `fvm list` is parsed only as a fallback when the machine mode is
// unavailable or produces output that fails schema validation.
package fvm
