package scaffold

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"
)

// ErrInvalidInput is returned by validators built with wrapValidator.
var ErrInvalidInput = errors.New("invalid input")

// Prompter asks the user questions.
type Prompter interface {
	// Prompt asks for free text. def is offered as the default answer.
	Prompt(label, def string, validate func(string) error) (string, error)
	// Select asks the user to pick one of items and returns its index.
	Select(label string, items []string) (int, error)
	// Confirm asks a yes/no question.
	Confirm(label string) (bool, error)
}

// TerminalPrompter is a Prompter backed by promptui.
type TerminalPrompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewTerminalPrompter creates a prompter on the given streams. Nil streams
// select the process terminal.
func NewTerminalPrompter(stdin io.ReadCloser, stdout io.WriteCloser) *TerminalPrompter {
	return &TerminalPrompter{Stdin: stdin, Stdout: stdout}
}

// Prompt implements Prompter.
func (p *TerminalPrompter) Prompt(label, def string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  def,
		Validate: validate,
		Stdin:    p.Stdin,
		Stdout:   p.Stdout,
	}
	return prompt.Run()
}

// Select implements Prompter.
func (p *TerminalPrompter) Select(label string, items []string) (int, error) {
	sel := promptui.Select{
		Label:  label,
		Items:  items,
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}
	i, _, err := sel.Run()
	return i, err
}

// Confirm implements Prompter.
func (p *TerminalPrompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	return err == nil, err
}

// wrapValidator adapts a predicate to the promptui validation signature.
func wrapValidator(f func(string) bool) func(string) error {
	return func(s string) error {
		if f(s) {
			return nil
		}
		return ErrInvalidInput
	}
}
