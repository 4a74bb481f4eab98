package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Notifier shows the one-line outcome of a command.
type Notifier interface {
	Info(msg string)
	Error(msg string)
	// Status shows the refreshed status line. It is not a notification.
	Status(text string)
}

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	// StatusStyle renders the status line.
	StatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// ConsoleNotifier prints notifications: info on out, errors on errOut.
type ConsoleNotifier struct {
	out    io.Writer
	errOut io.Writer
}

// NewNotifier creates a ConsoleNotifier.
func NewNotifier(out, errOut io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out, errOut: errOut}
}

// Info implements Notifier.
func (n *ConsoleNotifier) Info(msg string) {
	fmt.Fprintf(n.out, "%s %s\n", infoStyle.Render("✓"), msg)
}

// Error implements Notifier.
func (n *ConsoleNotifier) Error(msg string) {
	fmt.Fprintf(n.errOut, "%s %s\n", errorStyle.Render("✗"), msg)
}

// Status implements Notifier. The line goes to errOut so stdout stays
// limited to command results.
func (n *ConsoleNotifier) Status(text string) {
	if IsTerminal(n.errOut) {
		text = StatusStyle.Render(text)
	}
	fmt.Fprintln(n.errOut, text)
}
