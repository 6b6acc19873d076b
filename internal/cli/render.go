package cli

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown for the current
// terminal. When the terminal reports no color support (pipes, dumb
// terminals) or the config asks for plain output, markdown passes through
// untouched.
func NewRenderer(style string) func(string) string {
	if style == "plain" || termenv.ColorProfile() == termenv.Ascii {
		return func(markdown string) string { return markdown }
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
	)
	if err != nil {
		return func(markdown string) string { return markdown }
	}

	return func(markdown string) string {
		out, err := r.Render(markdown)
		if err != nil {
			return markdown
		}
		return out
	}
}
