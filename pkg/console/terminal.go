package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/arthur-debert/clide/pkg/style"
	"github.com/arthur-debert/clide/pkg/text"
)

// Terminal is the Console backend for a real terminal attached to the
// process's standard streams.
type Terminal struct {
	in       *os.File
	reader   *bufio.Reader
	out      *os.File
	errOut   io.Writer
	screen   *termenv.Output
	renderer *style.Renderer
}

// NewTerminal creates a Terminal over stdin/stdout/stderr. Styling is
// enabled only when stdout is a color-capable TTY and NO_COLOR is unset.
func NewTerminal() *Terminal {
	return NewStyledTerminal(detectStyling(os.Stdout))
}

// NewStyledTerminal creates a Terminal with styling forced on or off,
// bypassing detection. Hosts use this for "always"/"never" color modes.
func NewStyledTerminal(styled bool) *Terminal {
	return &Terminal{
		in:       os.Stdin,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		errOut:   os.Stderr,
		screen:   termenv.NewOutput(os.Stdout),
		renderer: style.NewRenderer(styled),
	}
}

// detectStyling decides whether styled output is appropriate for the given
// stream: NO_COLOR wins, then TTY detection, then the color profile.
func detectStyling(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Input reads one line from the terminal. Secure reads go through the
// terminal driver with echo disabled; when stdin is not a TTY they fall back
// to a normal read. A line already started when the stream ends is still
// returned; io.EOF is only reported when no data was read at all.
func (t *Terminal) Input(secure bool) (string, error) {
	if secure && term.IsTerminal(int(t.in.Fd())) {
		raw, err := term.ReadPassword(int(t.in.Fd()))
		// ReadPassword swallows the user's newline; emit one so the
		// cursor moves on like a normal read.
		fmt.Fprintln(t.out)
		if err != nil {
			return "", io.EOF
		}
		return string(raw), nil
	}

	line, err := t.reader.ReadString('\n')
	if err != nil {
		if line == "" {
			return "", io.EOF
		}
		// Final unterminated line before end-of-stream.
		return trimEOL(line), nil
	}
	return trimEOL(line), nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Output writes styled text to the terminal.
func (t *Terminal) Output(txt text.Text, newLine bool) {
	fmt.Fprint(t.out, t.renderer.Render(txt))
	if newLine {
		fmt.Fprintln(t.out)
	}
}

// Error writes a message to the error stream, styled when the error stream
// would render it.
func (t *Terminal) Error(message string, newLine bool) {
	fmt.Fprint(t.errOut, t.renderer.Render(text.Styled(message, text.ErrorStyle)))
	if newLine {
		fmt.Fprintln(t.errOut)
	}
}

// Clear erases prior output. ClearLine moves the cursor to the previous line
// and wipes it, which undoes exactly one completed line of output.
func (t *Terminal) Clear(unit ClearUnit) {
	switch unit {
	case ClearLine:
		t.screen.CursorPrevLine(1)
		t.screen.ClearLine()
	case ClearScreen:
		t.screen.ClearScreen()
	}
}

// Size returns the terminal dimensions, defaulting to 80x24 when the size
// cannot be determined.
func (t *Terminal) Size() (int, int) {
	width, height, err := term.GetSize(int(t.out.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}

var _ Console = (*Terminal)(nil)
