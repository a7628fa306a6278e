package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownCache keeps the last rendered description so the preview is not
// re-rendered on every frame
type markdownCache struct {
	source string
	dark   bool
	width  int
	output string
	valid  bool
}

// render returns the description rendered as markdown, or the raw text
// when glamour fails
func (c *markdownCache) render(source string, dark bool, width int) string {
	if c.valid && c.source == source && c.dark == dark && c.width == width {
		return c.output
	}

	style := "light"
	if dark {
		style = "dark"
	}

	output := source
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if rendered, err := r.Render(source); err == nil {
			output = strings.Trim(rendered, "\n")
		}
	}

	*c = markdownCache{source: source, dark: dark, width: width, output: output, valid: true}
	return output
}
