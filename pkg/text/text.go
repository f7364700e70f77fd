package text

import "strings"

// Kind is the semantic category of a style.
type Kind int

const (
	KindPlain Kind = iota
	KindInfo
	KindWarning
	KindError
	KindCustom
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindInfo:
		return "info"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Style tags a span with a semantic rendering category. Color is only
// meaningful for KindCustom and holds a terminal color value (hex or ANSI
// index) interpreted by the renderer.
type Style struct {
	Kind  Kind
	Color string
}

// Predefined semantic styles.
var (
	PlainStyle   = Style{Kind: KindPlain}
	InfoStyle    = Style{Kind: KindInfo}
	WarningStyle = Style{Kind: KindWarning}
	ErrorStyle   = Style{Kind: KindError}
)

// Custom returns a style carrying an arbitrary color value.
func Custom(color string) Style {
	return Style{Kind: KindCustom, Color: color}
}

// Span is one contiguous run of equally styled content.
type Span struct {
	Content string
	Style   Style
}

// Text is an immutable ordered sequence of styled spans. The zero value is a
// valid, empty Text.
type Text struct {
	spans []Span
}

// Styled returns a single-span Text.
func Styled(content string, style Style) Text {
	return Text{spans: []Span{{Content: content, Style: style}}}
}

// Plain returns a single-span Text with the plain style.
func Plain(content string) Text {
	return Styled(content, PlainStyle)
}

// Append returns a new Text holding the receiver's spans followed by other's.
// Span order is preserved and adjacent spans are never merged, even when their
// styles are equal.
func (t Text) Append(other Text) Text {
	if other.IsEmpty() {
		return t
	}
	spans := make([]Span, 0, len(t.spans)+len(other.spans))
	spans = append(spans, t.spans...)
	spans = append(spans, other.spans...)
	return Text{spans: spans}
}

// With returns a new Text with one more styled span at the end.
func (t Text) With(content string, style Style) Text {
	return t.Append(Styled(content, style))
}

// Spans returns a copy of the span sequence.
func (t Text) Spans() []Span {
	out := make([]Span, len(t.spans))
	copy(out, t.spans)
	return out
}

// IsEmpty reports whether the Text holds no spans.
func (t Text) IsEmpty() bool {
	return len(t.spans) == 0
}

// String returns the unstyled concatenation of all span contents.
func (t Text) String() string {
	var b strings.Builder
	for _, s := range t.spans {
		b.WriteString(s.Content)
	}
	return b.String()
}
