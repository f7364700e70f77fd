package main

import (
	"os"

	"github.com/arthur-debert/clide/pkg/command"
	"github.com/arthur-debert/clide/pkg/config"
	"github.com/arthur-debert/clide/pkg/console"
	"github.com/arthur-debert/clide/pkg/errors"
	"github.com/arthur-debert/clide/pkg/logging"
)

func main() {
	args := os.Args[1:]

	// Repeated -v flags raise verbosity; they are peeled off before
	// dispatch so every command shares them.
	verbosity := 0
	for len(args) > 0 && args[0] == "-v" {
		verbosity++
		args = args[1:]
	}
	logging.SetupLogger(verbosity)
	logger := logging.GetLogger("main")

	cfg, err := config.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("ignoring broken config file")
		cfg = config.Default()
	}
	cfg.ApplyTheme()

	var term *console.Terminal
	switch cfg.Color {
	case "always":
		term = console.NewStyledTerminal(true)
	case "never":
		term = console.NewStyledTerminal(false)
	default:
		term = console.NewTerminal()
	}

	if err := command.Dispatch(term, newRoot(), args); err != nil {
		term.Error(errors.GetReason(err), true)
		os.Exit(1)
	}
}
