// Package prompt implements interactive line-oriented prompts on top of the
// Console capability: enumerated selection and yes/no confirmation. Prompts
// undo their own terminal output on completion, so only what the caller
// writes afterwards remains visible.
package prompt

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/clide/pkg/console"
	"github.com/arthur-debert/clide/pkg/logging"
	"github.com/arthur-debert/clide/pkg/text"
)

// exit is swappable so tests can observe the fatal end-of-stream path
// without killing the test process.
var exit = os.Exit

const endOfStreamMessage = "input stream closed while waiting for a selection"

// Choose renders prompt and a 1-based enumerated item list, then reads
// selections until one is a valid index. Invalid entries clear their own
// line and retry without re-printing the list. On success all prompt output
// (len(items) list lines, the prompt line, and the final input line) is
// cleared and the chosen item returned.
//
// End-of-stream on the input is unrecoverable: there is no safe default to
// substitute, so the condition is reported on both channels and the process
// terminates with a non-zero status.
func Choose[T any](c console.Console, prompt text.Text, items []T, display func(T) text.Text) T {
	logger := logging.GetLogger("prompt")

	c.Output(prompt, true)
	for i, item := range items {
		line := text.Styled(fmt.Sprintf("%d: ", i+1), text.InfoStyle).Append(display(item))
		c.Output(line, true)
	}

	for {
		c.Output(text.Styled("> ", text.InfoStyle), false)
		line, err := c.Input(false)
		if err != nil {
			logger.Error().Err(err).Msg("end of input during selection")
			c.Error(endOfStreamMessage, true)
			c.Output(text.Styled(endOfStreamMessage, text.ErrorStyle), true)
			exit(1)
			var zero T // unreachable unless exit is stubbed
			return zero
		}

		index, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || index < 1 || index > len(items) {
			logger.Debug().Str("input", line).Msg("invalid selection, retrying")
			c.Clear(console.ClearLine)
			continue
		}

		// Restore the terminal to its pre-call state: one clear per item,
		// one for the prompt line, one for the accepted input line.
		for i := 0; i < len(items)+2; i++ {
			c.Clear(console.ClearLine)
		}
		return items[index-1]
	}
}
