// Package help renders long-form help topics as markdown for the terminal.
package help

import (
	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/clide/pkg/console"
	"github.com/arthur-debert/clide/pkg/text"
)

// Topic is a named long-form help document in markdown.
type Topic struct {
	Name    string
	Title   string
	Content string
}

// Renderer converts markdown to terminal output using glamour.
type Renderer struct {
	Style string // "dark", "light", "notty", "auto", or a custom style path
	Width int    // word-wrap width, 0 for none
}

// NewRenderer creates a renderer with terminal auto-detection.
func NewRenderer() *Renderer {
	return &Renderer{Style: "auto"}
}

// Render converts markdown to styled terminal text, falling back to the raw
// content when rendering fails.
func (r *Renderer) Render(content string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// Show renders a topic through the console, wrapped to the terminal width.
// The rendered markdown already carries its own escape sequences, so it is
// written as a plain span.
func Show(c console.Console, topic Topic) {
	width, _ := c.Size()
	r := NewRenderer()
	r.Width = width
	c.Output(text.Plain(r.Render(topic.Content)), false)
}
