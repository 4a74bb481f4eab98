// Package uitest provides scripted ui doubles for command tests.
package uitest

import (
	"fmt"

	"github.com/emmanuelsho9/fvm-vscode-extension/internal/ui"
)

// Answer is one scripted reply. Cancel dismisses the prompt.
type Answer struct {
	Text    string
	Pick    string
	Confirm bool
	Cancel  bool
}

// Prompter replays answers in order and records the prompts it saw.
type Prompter struct {
	Answers []Answer
	Prompts []string
	// Offered holds the items of every Pick call.
	Offered [][]string
}

// NewPrompter creates a Prompter with the given answers.
func NewPrompter(answers ...Answer) *Prompter {
	return &Prompter{Answers: answers}
}

func (p *Prompter) next(prompt string) (Answer, error) {
	p.Prompts = append(p.Prompts, prompt)
	if len(p.Answers) == 0 {
		return Answer{}, fmt.Errorf("uitest: unexpected prompt %q", prompt)
	}
	a := p.Answers[0]
	p.Answers = p.Answers[1:]
	return a, nil
}

// Input implements ui.Prompter. An empty Text returns def.
func (p *Prompter) Input(title, def string) (string, error) {
	a, err := p.next(title)
	if err != nil {
		return "", err
	}
	if a.Cancel {
		return "", ui.ErrCancelled
	}
	if a.Text == "" {
		return def, nil
	}
	return a.Text, nil
}

// Pick implements ui.Prompter by matching Answer.Pick exactly.
func (p *Prompter) Pick(title string, items []string) (int, error) {
	a, err := p.next(title)
	if err != nil {
		return 0, err
	}
	p.Offered = append(p.Offered, items)
	if a.Cancel {
		return 0, ui.ErrCancelled
	}
	for i, item := range items {
		if item == a.Pick {
			return i, nil
		}
	}
	return 0, fmt.Errorf("uitest: %q not offered in %v", a.Pick, items)
}

// Confirm implements ui.Prompter.
func (p *Prompter) Confirm(question string) (bool, error) {
	a, err := p.next(question)
	if err != nil {
		return false, err
	}
	return a.Confirm && !a.Cancel, nil
}

// Notifier records notifications.
type Notifier struct {
	Infos    []string
	Errors   []string
	Statuses []string
}

// Info implements ui.Notifier.
func (n *Notifier) Info(msg string) { n.Infos = append(n.Infos, msg) }

// Error implements ui.Notifier.
func (n *Notifier) Error(msg string) { n.Errors = append(n.Errors, msg) }

// Status implements ui.Notifier.
func (n *Notifier) Status(text string) { n.Statuses = append(n.Statuses, text) }

// Count returns the number of notifications shown.
func (n *Notifier) Count() int { return len(n.Infos) + len(n.Errors) }

// Progress runs operations inline and records their titles.
type Progress struct {
	Titles []string
}

// Run implements ui.Progress.
func (p *Progress) Run(title string, fn func() error) error {
	p.Titles = append(p.Titles, title)
	return fn()
}
