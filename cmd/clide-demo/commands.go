package main

import (
	"fmt"

	"github.com/arthur-debert/clide/internal/version"
	"github.com/arthur-debert/clide/pkg/command"
	"github.com/arthur-debert/clide/pkg/console"
	"github.com/arthur-debert/clide/pkg/help"
	"github.com/arthur-debert/clide/pkg/prompt"
	"github.com/arthur-debert/clide/pkg/text"
)

const aboutTopic = `# clide

A terminal interaction and command-dispatch toolkit.

Declare a tree of commands with typed arguments and options, dispatch the
process's tokens through it, and talk to the user through the console
capability.
`

// newRoot builds the demo command tree.
func newRoot() *command.Group {
	return &command.Group{
		Help: []string{"Demo for the clide toolkit."},
		Children: map[string]command.Node{
			"greet":   newGreetCmd(),
			"pick":    newPickCmd(),
			"login":   newLoginCmd(),
			"about":   newAboutCmd(),
			"help":    newHelpCmd(),
			"wipe":    newWipeCmd(),
			"version": newVersionCmd(),
		},
	}
}

func newGreetCmd() *command.Command {
	return &command.Command{
		Arguments: []command.Argument{
			{Name: "name", Help: []string{"who to greet"}},
		},
		Options: []command.Option{
			{Name: "greeting", Short: 'g', Default: "Hello", HasDefault: true,
				Help: []string{"greeting to use"}},
		},
		Help: []string{"Greet someone."},
		Run: func(ctx *command.Context) error {
			name, err := ctx.Argument("name")
			if err != nil {
				return err
			}
			greeting, err := ctx.RequireOption("greeting")
			if err != nil {
				return err
			}
			ctx.Console.Output(
				text.Styled(greeting+", ", text.InfoStyle).With(name+"!", text.PlainStyle),
				true)
			return nil
		},
	}
}

func newPickCmd() *command.Command {
	return &command.Command{
		Help: []string{"Pick a flavor from a list."},
		Run: func(ctx *command.Context) error {
			flavors := []string{"vanilla", "chocolate", "pistachio"}
			chosen := prompt.Choose(ctx.Console, text.Plain("Pick a flavor:"),
				flavors, func(f string) text.Text { return text.Plain(f) })
			ctx.Console.Output(text.Plain("You chose: "+chosen), true)
			return nil
		},
	}
}

func newLoginCmd() *command.Command {
	return &command.Command{
		Arguments: []command.Argument{
			{Name: "user", Help: []string{"account name"}},
		},
		Help: []string{"Prompt for a password without echo."},
		Run: func(ctx *command.Context) error {
			user, err := ctx.Argument("user")
			if err != nil {
				return err
			}
			ctx.Console.Output(text.Plain("Password for "+user+": "), false)
			secret, inputErr := ctx.Console.Input(true)
			if inputErr != nil {
				ctx.Console.Error("no password entered", true)
				return nil
			}
			ctx.Console.Output(
				text.Styled(fmt.Sprintf("received %d characters", len(secret)), text.InfoStyle),
				true)
			return nil
		},
	}
}

func newAboutCmd() *command.Command {
	return &command.Command{
		Help: []string{"Show the long-form introduction."},
		Run: func(ctx *command.Context) error {
			help.Show(ctx.Console, help.Topic{
				Name:    "about",
				Title:   "About clide",
				Content: aboutTopic,
			})
			return nil
		},
	}
}

func newHelpCmd() *command.Command {
	return &command.Command{
		Help: []string{"Show usage for the demo."},
		Run: func(ctx *command.Context) error {
			ctx.Console.Output(command.Usage("clide-demo", newRoot()), true)
			return nil
		},
	}
}

func newVersionCmd() *command.Command {
	return &command.Command{
		Help: []string{"Show version information."},
		Run: func(ctx *command.Context) error {
			ctx.Console.Output(text.Plain(fmt.Sprintf("clide %s (%s, %s)",
				version.Version, version.Commit, version.Date)), true)
			return nil
		},
	}
}

func newWipeCmd() *command.Command {
	return &command.Command{
		Help: []string{"Clear the screen, after asking."},
		Run: func(ctx *command.Context) error {
			if prompt.Confirm(ctx.Console, text.Plain("Clear the whole screen?"), false) {
				ctx.Console.Clear(console.ClearScreen)
			}
			return nil
		},
	}
}
