package style

import (
	"strings"

	"github.com/arthur-debert/clide/pkg/text"
)

// Renderer turns styled text into a terminal string. When styling is
// disabled (not a TTY, NO_COLOR) spans render as their raw content.
type Renderer struct {
	styled bool
}

// NewRenderer creates a renderer. styled controls whether span styles are
// applied or stripped.
func NewRenderer(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

// Styled reports whether the renderer applies styles.
func (r *Renderer) Styled() bool {
	return r.styled
}

// Render returns the terminal representation of t.
func (r *Renderer) Render(t text.Text) string {
	if !r.styled {
		return t.String()
	}
	var b strings.Builder
	for _, span := range t.Spans() {
		b.WriteString(For(span.Style).Render(span.Content))
	}
	return b.String()
}
