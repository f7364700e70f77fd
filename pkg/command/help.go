package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/clide/pkg/text"
)

// Usage builds a styled usage block for a node. name is the full command
// path as the user types it (e.g. "clide-demo pack add"). The block is not
// rendered implicitly by Dispatch; hosts decide when to show it.
func Usage(name string, node Node) text.Text {
	switch n := node.(type) {
	case *Command:
		return commandUsage(name, n)
	case *Group:
		return groupUsage(name, n)
	default:
		return text.Text{}
	}
}

func commandUsage(name string, cmd *Command) text.Text {
	synopsis := name
	if len(cmd.Options) > 0 {
		synopsis += " [options]"
	}
	for _, arg := range cmd.Arguments {
		synopsis += fmt.Sprintf(" <%s>", arg.Name)
	}

	t := text.Styled("Usage: ", text.InfoStyle).With(synopsis, text.PlainStyle)
	t = appendHelpLines(t, cmd.Help)

	if len(cmd.Arguments) > 0 {
		t = t.With("\n\nArguments:", text.InfoStyle)
		for _, arg := range cmd.Arguments {
			t = t.With(fmt.Sprintf("\n  %-16s", arg.Name), text.PlainStyle)
			t = t.With(strings.Join(arg.Help, " "), text.PlainStyle)
		}
	}

	t = appendOptions(t, cmd.Options)
	return t
}

func groupUsage(name string, group *Group) text.Text {
	synopsis := name
	if len(group.Options) > 0 {
		synopsis += " [options]"
	}
	synopsis += " <command>"

	t := text.Styled("Usage: ", text.InfoStyle).With(synopsis, text.PlainStyle)
	t = appendHelpLines(t, group.Help)

	if len(group.Children) > 0 {
		names := make([]string, 0, len(group.Children))
		for child := range group.Children {
			names = append(names, child)
		}
		sort.Strings(names)

		t = t.With("\n\nCommands:", text.InfoStyle)
		for _, child := range names {
			t = t.With(fmt.Sprintf("\n  %-16s", child), text.PlainStyle)
			t = t.With(strings.Join(nodeHelp(group.Children[child]), " "), text.PlainStyle)
		}
	}

	t = appendOptions(t, group.Options)
	return t
}

func appendHelpLines(t text.Text, help []string) text.Text {
	for _, line := range help {
		t = t.With("\n"+line, text.PlainStyle)
	}
	return t
}

func appendOptions(t text.Text, options []Option) text.Text {
	if len(options) == 0 {
		return t
	}
	t = t.With("\n\nOptions:", text.InfoStyle)
	for _, opt := range options {
		flags := "--" + opt.Name
		if opt.Short != 0 {
			flags += ", -" + string(opt.Short)
		}
		t = t.With(fmt.Sprintf("\n  %-16s", flags), text.PlainStyle)
		t = t.With(strings.Join(opt.Help, " "), text.PlainStyle)
		if opt.HasDefault {
			t = t.With(fmt.Sprintf(" (default: %s)", opt.Default), text.PlainStyle)
		}
	}
	return t
}

func nodeHelp(node Node) []string {
	switch n := node.(type) {
	case *Command:
		return n.Help
	case *Group:
		return n.Help
	default:
		return nil
	}
}
