package command

import (
	"strings"

	"github.com/arthur-debert/clide/pkg/errors"
)

// takeOption scans the cursor for one declared option and removes the
// matched tokens. Long and short recognizers accept the same separated form
// ("--name value", "-s value"); the long form additionally accepts
// "--name=value". An option token at the end of input with no value to pair
// with is an optionRequired failure.
func (in *Input) takeOption(opt Option) (string, bool, error) {
	long := "--" + opt.Name
	longEq := long + "="
	var short string
	if opt.Short != 0 {
		short = "-" + string(opt.Short)
	}

	for i, tok := range in.tokens {
		switch {
		case strings.HasPrefix(tok, longEq):
			value := strings.TrimPrefix(tok, longEq)
			in.removeAt(i)
			return value, true, nil

		case tok == long || (short != "" && tok == short):
			if i+1 >= len(in.tokens) {
				return "", false, errors.Newf(errors.ErrOptionRequired,
					"option %q expects a value", opt.Name)
			}
			value := in.tokens[i+1]
			in.removeAt(i + 1)
			in.removeAt(i)
			return value, true, nil
		}
	}
	return "", false, nil
}

// parseOptions extracts every declared option from the cursor. Options
// absent from input resolve to their default when one is declared, and to
// absent otherwise; required-ness is enforced later by RequireOption.
func parseOptions(in *Input, options []Option) (map[string]string, error) {
	values := make(map[string]string, len(options))
	for _, opt := range options {
		value, found, err := in.takeOption(opt)
		if err != nil {
			return nil, err
		}
		switch {
		case found:
			values[opt.Name] = value
		case opt.HasDefault:
			values[opt.Name] = opt.Default
		}
	}
	return values, nil
}

// parseArguments consumes declared positional arguments in order from the
// remaining tokens.
func parseArguments(in *Input, arguments []Argument) (map[string]string, error) {
	values := make(map[string]string, len(arguments))
	for _, arg := range arguments {
		tok, ok := in.Next()
		if !ok {
			return nil, errors.Newf(errors.ErrArgumentRequired,
				"argument %q is required", arg.Name)
		}
		values[arg.Name] = tok
	}
	return values, nil
}

// ensureExhausted fails when tokens remain after all declared arguments and
// options were consumed. This is what catches typos and unsupported flags.
func ensureExhausted(in *Input) error {
	if in.Len() == 0 {
		return nil
	}
	leftover := in.Remaining()
	return errors.Newf(errors.ErrExcessInput,
		"unexpected input: %s", strings.Join(leftover, " ")).
		WithDetail("tokens", leftover)
}
