package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrCancelled is returned when the user dismisses a prompt.
var ErrCancelled = errors.New("cancelled")

// Prompter collects input from the user.
type Prompter interface {
	// Input asks for free text. An empty answer returns def.
	Input(title, def string) (string, error)
	// Pick asks the user to choose one of items and returns its index.
	Pick(title string, items []string) (int, error)
	// Confirm asks a yes/no question. Dismissal counts as no.
	Confirm(question string) (bool, error)
}

// Console is a Prompter over a line-oriented reader and writer.
type Console struct {
	r *bufio.Reader
	w io.Writer
}

// NewConsole creates a Console prompting on w and reading answers from r.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{r: bufio.NewReader(r), w: w}
}

// readLine returns the next trimmed line. EOF with no data is ErrCancelled.
func (c *Console) readLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Input implements Prompter.
func (c *Console) Input(title, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(c.w, "%s [%s]: ", title, def)
	} else {
		fmt.Fprintf(c.w, "%s: ", title)
	}

	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Pick implements Prompter. The answer is either a number from the menu or
// text that is fuzzy-matched against the items; several matches narrow the
// menu and ask again. An empty answer cancels.
func (c *Console) Pick(title string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("nothing to choose from")
	}

	visible := make([]int, len(items))
	for i := range items {
		visible[i] = i
	}

	for {
		fmt.Fprintf(c.w, "\n%s\n", title)
		for n, idx := range visible {
			fmt.Fprintf(c.w, "  %d) %s\n", n+1, items[idx])
		}
		fmt.Fprintf(c.w, "Enter number [1-%d] or text to filter: ", len(visible))

		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return 0, ErrCancelled
		}

		if num, err := strconv.Atoi(line); err == nil {
			if num < 1 || num > len(visible) {
				return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(visible))
			}
			return visible[num-1], nil
		}

		labels := make([]string, len(visible))
		for n, idx := range visible {
			labels[n] = items[idx]
		}
		matches := fuzzy.Find(line, labels)
		switch len(matches) {
		case 0:
			fmt.Fprintf(c.w, "No match for %q.\n", line)
		case 1:
			return visible[matches[0].Index], nil
		default:
			narrowed := make([]int, len(matches))
			for n, m := range matches {
				narrowed[n] = visible[m.Index]
			}
			visible = narrowed
		}
	}
}

// Confirm implements Prompter.
func (c *Console) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.w, "%s [y/N]: ", question)

	line, err := c.readLine()
	if errors.Is(err, ErrCancelled) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
