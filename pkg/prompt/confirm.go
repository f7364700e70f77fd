package prompt

import (
	"strings"

	"github.com/arthur-debert/clide/pkg/console"
	"github.com/arthur-debert/clide/pkg/logging"
	"github.com/arthur-debert/clide/pkg/text"
)

// Confirm asks a yes/no question. An empty entry picks defaultYes, invalid
// entries clear their own line and retry, and an accepted answer clears the
// question and input lines. End-of-stream follows the same fatal policy as
// Choose so all interactive reads behave alike.
func Confirm(c console.Console, question text.Text, defaultYes bool) bool {
	logger := logging.GetLogger("prompt")

	hint := " [y/N]"
	if defaultYes {
		hint = " [Y/n]"
	}
	c.Output(question.With(hint, text.InfoStyle), true)

	for {
		c.Output(text.Styled("> ", text.InfoStyle), false)
		line, err := c.Input(false)
		if err != nil {
			logger.Error().Err(err).Msg("end of input during confirmation")
			c.Error(endOfStreamMessage, true)
			c.Output(text.Styled(endOfStreamMessage, text.ErrorStyle), true)
			exit(1)
			return false
		}

		var answer bool
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			answer = defaultYes
		case "y", "yes":
			answer = true
		case "n", "no":
			answer = false
		default:
			c.Clear(console.ClearLine)
			continue
		}

		// Question line plus the accepted input line.
		c.Clear(console.ClearLine)
		c.Clear(console.ClearLine)
		return answer
	}
}
