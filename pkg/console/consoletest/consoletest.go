// Package consoletest provides a recording Console for tests. Every call is
// captured as an Event so tests can assert the full interaction transcript,
// and input lines come from a scripted queue whose exhaustion signals
// end-of-stream.
package consoletest

import (
	"io"
	"strings"

	"github.com/arthur-debert/clide/pkg/console"
	"github.com/arthur-debert/clide/pkg/text"
)

// EventKind discriminates transcript events.
type EventKind int

const (
	EventOutput EventKind = iota
	EventError
	EventClear
	EventInput
)

// Event is one recorded console interaction.
type Event struct {
	Kind    EventKind
	Text    text.Text         // EventOutput
	Message string            // EventError
	NewLine bool              // EventOutput, EventError
	Unit    console.ClearUnit // EventClear
	Secure  bool              // EventInput
	Line    string            // EventInput, the line served from the queue
	EOF     bool              // EventInput, queue was exhausted
}

// Console is a recording test double. The zero value has no scripted input;
// any read reports end-of-stream.
type Console struct {
	inputs []string
	Events []Event

	// Width and Height are returned by Size. They default to 80x24.
	Width  int
	Height int
}

// New creates a console that will serve the given input lines in order.
func New(inputs ...string) *Console {
	return &Console{inputs: inputs}
}

// Input pops the next scripted line, or io.EOF once the queue is empty.
func (c *Console) Input(secure bool) (string, error) {
	if len(c.inputs) == 0 {
		c.Events = append(c.Events, Event{Kind: EventInput, Secure: secure, EOF: true})
		return "", io.EOF
	}
	line := c.inputs[0]
	c.inputs = c.inputs[1:]
	c.Events = append(c.Events, Event{Kind: EventInput, Secure: secure, Line: line})
	return line, nil
}

// Output records a styled write.
func (c *Console) Output(t text.Text, newLine bool) {
	c.Events = append(c.Events, Event{Kind: EventOutput, Text: t, NewLine: newLine})
}

// Error records an error-channel write.
func (c *Console) Error(message string, newLine bool) {
	c.Events = append(c.Events, Event{Kind: EventError, Message: message, NewLine: newLine})
}

// Clear records a clear instruction.
func (c *Console) Clear(unit console.ClearUnit) {
	c.Events = append(c.Events, Event{Kind: EventClear, Unit: unit})
}

// Size returns the configured dimensions.
func (c *Console) Size() (int, int) {
	if c.Width > 0 && c.Height > 0 {
		return c.Width, c.Height
	}
	return 80, 24
}

// Transcript renders all recorded output events as plain text, in order.
// Clear and input events are not part of the transcript.
func (c *Console) Transcript() string {
	var b strings.Builder
	for _, e := range c.Events {
		switch e.Kind {
		case EventOutput:
			b.WriteString(e.Text.String())
			if e.NewLine {
				b.WriteString("\n")
			}
		case EventError:
			b.WriteString(e.Message)
			if e.NewLine {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// OutputLines counts completed output lines written so far.
func (c *Console) OutputLines() int {
	n := 0
	for _, e := range c.Events {
		if e.Kind == EventOutput && e.NewLine {
			n++
		}
	}
	return n
}

// InputLines counts lines served from the input queue. On a real terminal
// each served line ends with the user's Enter, completing the pending
// prompt line.
func (c *Console) InputLines() int {
	n := 0
	for _, e := range c.Events {
		if e.Kind == EventInput && !e.EOF {
			n++
		}
	}
	return n
}

// ClearedLines counts single-line clear instructions recorded so far.
func (c *Console) ClearedLines() int {
	n := 0
	for _, e := range c.Events {
		if e.Kind == EventClear && e.Unit == console.ClearLine {
			n++
		}
	}
	return n
}

// NetLines is the terminal's net line growth: completed output lines plus
// lines the user's Enter key completed, minus cleared lines. A fully undone
// interaction nets zero.
func (c *Console) NetLines() int {
	return c.OutputLines() + c.InputLines() - c.ClearedLines()
}

var _ console.Console = (*Console)(nil)
