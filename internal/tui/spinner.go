package tui

import (
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// runSpinner runs a spinner. Replaced in tests.
var runSpinner = func(s *spinner.Spinner) error {
	return s.Run()
}

// WithSpinner runs action while showing title next to a spinner. Outside a
// terminal the action runs without decoration.
func WithSpinner(title string, action func() error) error {
	if !IsInteractive() {
		return action()
	}

	var actionErr error
	s := spinner.New().
		Type(spinner.Dots).
		Title(" " + title).
		Style(lipgloss.NewStyle().Foreground(accent)).
		Action(func() {
			actionErr = action()
		})

	if err := runSpinner(s); err != nil {
		return err
	}
	return actionErr
}
