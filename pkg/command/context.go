package command

import (
	"github.com/arthur-debert/clide/pkg/console"
	"github.com/arthur-debert/clide/pkg/errors"
)

// Context is the result of successful parsing for one resolved node. It is
// built once per dispatch and not mutated afterwards; handlers reach the
// terminal through Console.
type Context struct {
	Console console.Console

	arguments map[string]string
	options   map[string]string
}

// NewContext builds a context from parsed argument and option values.
func NewContext(c console.Console, arguments, options map[string]string) *Context {
	ctx := &Context{
		Console:   c,
		arguments: make(map[string]string, len(arguments)),
		options:   make(map[string]string, len(options)),
	}
	for k, v := range arguments {
		ctx.arguments[k] = v
	}
	for k, v := range options {
		ctx.options[k] = v
	}
	return ctx
}

// Argument returns a positional argument's value. Asking for a name that was
// never declared or populated is a programming error surfaced as
// unknownArgument.
func (ctx *Context) Argument(name string) (string, error) {
	value, ok := ctx.arguments[name]
	if !ok {
		return "", errors.Newf(errors.ErrUnknownArgument,
			"argument %q was not declared", name)
	}
	return value, nil
}

// Option returns a named option's value, reporting whether one is present.
func (ctx *Context) Option(name string) (string, bool) {
	value, ok := ctx.options[name]
	return value, ok
}

// RequireOption returns a named option's value, failing with optionRequired
// when the option was absent from input and declared no default.
func (ctx *Context) RequireOption(name string) (string, error) {
	value, ok := ctx.options[name]
	if !ok {
		return "", errors.Newf(errors.ErrOptionRequired,
			"option %q is required", name)
	}
	return value, nil
}
