package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Progress runs long operations with a visible indicator.
type Progress interface {
	Run(title string, fn func() error) error
}

// Spinner is a Progress that animates on a terminal and prints the title
// once otherwise.
type Spinner struct {
	w       io.Writer
	animate bool
}

// NewSpinner creates a Spinner writing to w. Animation is enabled only when
// w is a terminal.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{w: w, animate: IsTerminal(w)}
}

// Run implements Progress.
func (s *Spinner) Run(title string, fn func() error) error {
	if !s.animate {
		fmt.Fprintln(s.w, title)
		return fn()
	}

	sp := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(s.w))
	sp.Suffix = " " + title
	sp.Start()
	defer sp.Stop()
	return fn()
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
