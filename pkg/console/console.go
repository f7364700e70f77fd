// Package console defines the capability every terminal interaction flows
// through: read a line, write styled text, report errors, clear prior output,
// and query dimensions. The Terminal type is the real backend; test doubles
// live in consoletest.
package console

import "github.com/arthur-debert/clide/pkg/text"

// ClearUnit selects how much prior output a Clear call erases.
type ClearUnit int

const (
	// ClearLine erases the most recently completed line of output.
	ClearLine ClearUnit = iota
	// ClearScreen erases the entire screen.
	ClearScreen
)

// String returns the string representation of the clear unit.
func (u ClearUnit) String() string {
	switch u {
	case ClearLine:
		return "line"
	case ClearScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// Console is the minimal surface a terminal backend or test double must
// satisfy. All reads are blocking; Input returns io.EOF when the input
// stream is exhausted, which is distinct from reading an empty line.
type Console interface {
	// Input reads one line, without the trailing newline. When secure is
	// true the backend reads without echoing, if it can.
	Input(secure bool) (string, error)

	// Output writes styled text, optionally followed by a newline.
	Output(t text.Text, newLine bool)

	// Error reports an out-of-band error message on the error channel.
	Error(message string, newLine bool)

	// Clear erases a unit of prior output.
	Clear(unit ClearUnit)

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)
}
