package logging

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/clide/pkg/console"
	"github.com/arthur-debert/clide/pkg/style"
	"github.com/arthur-debert/clide/pkg/text"
)

// ConsoleWriter renders zerolog events through a Console as
// "[ Level ] message (file:line)", styled by level. It performs no buffering
// and no filtering beyond the minimum-level gate set at construction.
type ConsoleWriter struct {
	console  console.Console
	minLevel zerolog.Level
}

// NewConsoleWriter creates a writer that drops events below minLevel.
func NewConsoleWriter(c console.Console, minLevel zerolog.Level) *ConsoleWriter {
	return &ConsoleWriter{console: c, minLevel: minLevel}
}

// Write decodes one zerolog event and renders it.
func (w *ConsoleWriter) Write(p []byte) (int, error) {
	var evt map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	if err := dec.Decode(&evt); err != nil {
		return len(p), fmt.Errorf("cannot decode log event: %w", err)
	}

	level := zerolog.NoLevel
	if l, ok := evt[zerolog.LevelFieldName].(string); ok {
		level, _ = zerolog.ParseLevel(l)
	}
	if level != zerolog.NoLevel && level < w.minLevel {
		return len(p), nil
	}

	message, _ := evt[zerolog.MessageFieldName].(string)
	line := fmt.Sprintf("[ %s ] %s", levelName(level), message)
	if caller, ok := evt[zerolog.CallerFieldName].(string); ok && caller != "" {
		line = fmt.Sprintf("%s (%s)", line, caller)
	}

	w.console.Output(text.Styled(line, styleForLevel(level)), true)
	return len(p), nil
}

// WriteLevel implements zerolog.LevelWriter so gated events are dropped
// without decoding.
func (w *ConsoleWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level != zerolog.NoLevel && level < w.minLevel {
		return len(p), nil
	}
	return w.Write(p)
}

func levelName(level zerolog.Level) string {
	switch level {
	case zerolog.TraceLevel:
		return "Trace"
	case zerolog.DebugLevel:
		return "Debug"
	case zerolog.InfoLevel:
		return "Info"
	case zerolog.WarnLevel:
		return "Warning"
	case zerolog.ErrorLevel:
		return "Error"
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return "Critical"
	default:
		return "Log"
	}
}

func styleForLevel(level zerolog.Level) text.Style {
	switch level {
	case zerolog.InfoLevel:
		return text.InfoStyle
	case zerolog.WarnLevel:
		return text.WarningStyle
	case zerolog.ErrorLevel:
		return text.ErrorStyle
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return text.Custom(style.AlertColor)
	default:
		return text.PlainStyle
	}
}

var _ zerolog.LevelWriter = (*ConsoleWriter)(nil)
