// Package command implements the declaration model, token parser, and tree
// dispatcher for named subcommands. A tree of groups and leaf commands is
// resolved against raw process tokens; the matching node's declared options
// and positional arguments are extracted into an execution context and its
// handler invoked. Parsing failures are structured errors with stable
// identifiers; they abort dispatch and surface to the caller unmodified.
package command
