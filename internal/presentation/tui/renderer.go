package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
// It uses a dark theme by default, but could be configurable.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// IsInteractive reports whether stdout is attached to a terminal. Piped
// output should receive plain YAML rather than styled markdown.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
