// Package printer renders styled status lines for the bumpfile CLI.
package printer

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

var (
	mu sync.Mutex

	// stdout receives regular status lines, stderr receives errors.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetNoColor disables ANSI styling for all subsequent output.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// SetOutput redirects printed lines. A nil writer leaves that stream as is.
// It returns a function restoring the previous writers.
func SetOutput(out, errOut io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()

	prevOut, prevErr := stdout, stderr
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
	return func() {
		mu.Lock()
		defer mu.Unlock()
		stdout, stderr = prevOut, prevErr
	}
}

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return infoStyle.Render(text)
}

func writeLine(w *io.Writer, text string) {
	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprintln(*w, text)
}

// PrintFaint prints text with faint styling.
func PrintFaint(text string) {
	writeLine(&stdout, Faint(text))
}

// PrintSuccess prints text with success (green) styling.
func PrintSuccess(text string) {
	writeLine(&stdout, Success(text))
}

// PrintWarning prints text with warning (yellow) styling.
func PrintWarning(text string) {
	writeLine(&stdout, Warning(text))
}

// PrintInfo prints text with info (cyan) styling.
func PrintInfo(text string) {
	writeLine(&stdout, Info(text))
}

// PrintError prints text with error (red) styling to stderr.
// It is safe to call from background goroutines.
func PrintError(text string) {
	writeLine(&stderr, Error(text))
}

// Plain prints text without styling to stdout. Used for machine-readable
// output such as a bare version string.
func Plain(text string) {
	writeLine(&stdout, text)
}
