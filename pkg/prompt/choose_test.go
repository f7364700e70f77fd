package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/clide/pkg/console"
	"github.com/arthur-debert/clide/pkg/console/consoletest"
	"github.com/arthur-debert/clide/pkg/text"
)

type exitCalled struct{ code int }

// stubExit makes the fatal path observable: exit panics with exitCalled and
// the test recovers it.
func stubExit(t *testing.T) {
	t.Helper()
	prev := exit
	exit = func(code int) { panic(exitCalled{code}) }
	t.Cleanup(func() { exit = prev })
}

func displayString(s string) text.Text {
	return text.Plain(s)
}

func TestChooseFirstTry(t *testing.T) {
	c := consoletest.New("2")
	items := []string{"red", "green", "blue"}

	got := Choose(c, text.Plain("pick a color"), items, displayString)

	assert.Equal(t, "green", got)
}

func TestChooseRendersPromptAndEnumeratedList(t *testing.T) {
	c := consoletest.New("1")

	Choose(c, text.Plain("pick"), []string{"a", "b"}, displayString)

	var lines []string
	for _, e := range c.Events {
		if e.Kind == consoletest.EventOutput {
			lines = append(lines, e.Text.String())
		}
	}
	require.Len(t, lines, 4)
	assert.Equal(t, "pick", lines[0])
	assert.Equal(t, "1: a", lines[1])
	assert.Equal(t, "2: b", lines[2])
	assert.Equal(t, "> ", lines[3])
}

func TestChooseIndexMarkerIsInfoStyled(t *testing.T) {
	c := consoletest.New("1")

	Choose(c, text.Plain("pick"), []string{"a"}, displayString)

	spans := c.Events[1].Text.Spans()
	require.Len(t, spans, 2)
	assert.Equal(t, "1: ", spans[0].Content)
	assert.Equal(t, text.InfoStyle, spans[0].Style)
}

func TestChooseClearsAllOutputOnSuccess(t *testing.T) {
	c := consoletest.New("3")
	items := []string{"a", "b", "c"}

	Choose(c, text.Plain("pick"), items, displayString)

	// One clear per item, one for the prompt line, one for the input line.
	assert.Equal(t, len(items)+2, c.ClearedLines())
	assert.Equal(t, 0, c.NetLines())
}

func TestChooseInvalidEntriesRetryWithoutRelisting(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		want    string
		retries int
	}{
		{"not_a_number", []string{"nope", "1"}, "a", 1},
		{"zero", []string{"0", "2"}, "b", 1},
		{"out_of_range", []string{"7", "-3", "3"}, "c", 2},
		{"empty_line", []string{"", "1"}, "a", 1},
		{"whitespace_tolerated", []string{" 2 "}, "b", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := consoletest.New(tt.inputs...)
			items := []string{"a", "b", "c"}

			got := Choose(c, text.Plain("pick"), items, displayString)

			assert.Equal(t, tt.want, got)

			listed := 0
			prompts := 0
			for _, e := range c.Events {
				if e.Kind != consoletest.EventOutput {
					continue
				}
				switch e.Text.String() {
				case "1: a":
					listed++
				case "> ":
					prompts++
				}
			}
			// The list is printed once no matter how many retries happen.
			assert.Equal(t, 1, listed)
			assert.Equal(t, tt.retries+1, prompts)

			// Each retry clears its own line; success clears the rest.
			assert.Equal(t, tt.retries+len(items)+2, c.ClearedLines())
			assert.Equal(t, 0, c.NetLines())
		})
	}
}

func TestChooseEndOfStreamIsFatal(t *testing.T) {
	stubExit(t)
	c := consoletest.New("bogus") // one invalid entry, then the stream ends

	defer func() {
		r := recover()
		require.Equal(t, exitCalled{1}, r)

		// The condition is reported on both channels before exiting.
		var errored, printed bool
		for _, e := range c.Events {
			if e.Kind == consoletest.EventError && e.Message == endOfStreamMessage {
				errored = true
			}
			if e.Kind == consoletest.EventOutput && e.Text.String() == endOfStreamMessage {
				printed = true
			}
		}
		assert.True(t, errored)
		assert.True(t, printed)
	}()

	Choose(c, text.Plain("pick"), []string{"a"}, displayString)
}

func TestChooseEmptyItemListStillPromptsThenHitsEndOfStream(t *testing.T) {
	stubExit(t)
	c := consoletest.New("1", "0")

	defer func() {
		r := recover()
		require.Equal(t, exitCalled{1}, r)

		// Prompt and input marker were rendered; every entry is out of
		// range for an empty list, so each one cleared its line.
		assert.Equal(t, "pick", c.Events[0].Text.String())
		assert.Equal(t, 2, c.ClearedLines())
	}()

	Choose(c, text.Plain("pick"), []string{}, displayString)
}

func TestChooseDisplayStylingIsPreserved(t *testing.T) {
	c := consoletest.New("1")

	type pack struct{ name string }
	got := Choose(c, text.Plain("pick"), []pack{{"dotfiles"}}, func(p pack) text.Text {
		return text.Styled(p.name, text.WarningStyle)
	})

	assert.Equal(t, pack{"dotfiles"}, got)
	spans := c.Events[1].Text.Spans()
	require.Len(t, spans, 2)
	assert.Equal(t, text.WarningStyle, spans[1].Style)
}

func TestChooseReadsAreNotSecure(t *testing.T) {
	c := consoletest.New("1")

	Choose(c, text.Plain("pick"), []string{"a"}, displayString)

	for _, e := range c.Events {
		if e.Kind == consoletest.EventInput {
			assert.False(t, e.Secure)
		}
	}
}

func TestChooseNeverClearsWholeScreen(t *testing.T) {
	c := consoletest.New("x", "1")

	Choose(c, text.Plain("pick"), []string{"a"}, displayString)

	for _, e := range c.Events {
		if e.Kind == consoletest.EventClear {
			assert.Equal(t, console.ClearLine, e.Unit)
		}
	}
}
