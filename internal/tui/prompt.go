package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// ErrNotInteractive is returned by prompts when no terminal is available.
var ErrNotInteractive = errors.New("not running interactively")

// runForm runs a form. Replaced in tests.
var runForm = func(f *huh.Form) error {
	return f.Run()
}

// keyMap lets esc abort a prompt in addition to ctrl+c.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	)
	return km
}

// PromptVersion asks for the version to write to file, suggesting current.
func PromptVersion(file, current string) (string, error) {
	if !IsInteractive() {
		return "", ErrNotInteractive
	}

	var version string
	input := huh.NewInput().
		Title(fmt.Sprintf("New version for %s", file)).
		Description(fmt.Sprintf("Current version: %s", current)).
		Placeholder(current).
		Value(&version).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("version cannot be empty")
			}
			return nil
		})

	form := huh.NewForm(huh.NewGroup(input)).
		WithTheme(currentThemeOrDefault()).
		WithKeyMap(keyMap())

	if err := runForm(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", fmt.Errorf("version prompt cancelled: %w", err)
		}
		return "", err
	}

	return strings.TrimSpace(version), nil
}
