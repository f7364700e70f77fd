// Package text defines the styled text value type used by every console
// producer. A Text is an ordered sequence of spans, each tagged with a
// semantic style. Values are immutable: composition returns new values and
// never merges adjacent spans.
package text
