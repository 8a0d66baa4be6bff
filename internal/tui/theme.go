package tui

import (
	"maps"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// themes maps the names accepted in configuration to huh themes.
var themes = map[string]func() *huh.Theme{
	"bumpfile": bumpfileTheme,
	"base":     huh.ThemeBase,
	"charm":    huh.ThemeCharm,
	"dracula":  huh.ThemeDracula,
}

// currentTheme is nil until SetTheme picks a non-default theme.
var currentTheme *huh.Theme

var accent = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"}

// SetTheme sets the theme by name. Empty or unknown names select the
// bumpfile theme.
func SetTheme(name string) {
	currentTheme = nil
	if name == "" {
		return
	}
	if build, ok := themes[name]; ok {
		currentTheme = build()
	}
}

// ThemeNames returns the accepted theme names, sorted.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// IsValidTheme reports whether name is an accepted theme.
func IsValidTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return bumpfileTheme()
	}
	return currentTheme
}

func resetTheme() {
	currentTheme = nil
}

// bumpfileTheme is the default prompt theme.
func bumpfileTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent)
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.Description = t.Focused.Description.Faint(true)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(lipgloss.Color("1"))
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(lipgloss.Color("1"))

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
