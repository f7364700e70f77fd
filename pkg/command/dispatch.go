package command

import (
	"strings"

	"github.com/arthur-debert/clide/pkg/console"
	"github.com/arthur-debert/clide/pkg/errors"
	"github.com/arthur-debert/clide/pkg/logging"
)

// Dispatch resolves tokens against the tree rooted at root and invokes the
// matching node's handler. Resolution peels leading tokens that exactly name
// a child of the current group; it stops at a leaf, or at a group whose
// children do not match the next token. The stopping node's own declarations
// are then parsed against the remaining tokens.
//
// Parse failures and handler failures both surface to the caller unmodified;
// there is no partial or fallback execution.
func Dispatch(c console.Console, root *Group, tokens []string) error {
	logger := logging.GetLogger("dispatch")

	in := NewInput(tokens)
	var node Node = root
	var path []string

	for {
		group, ok := node.(*Group)
		if !ok {
			break
		}
		tok, ok := in.Peek()
		if !ok {
			break
		}
		child, ok := group.Children[tok]
		if !ok {
			break
		}
		in.Next()
		path = append(path, tok)
		node = child
	}

	logger.Debug().
		Strs("path", path).
		Int("remaining", in.Len()).
		Msg("resolved command node")

	switch n := node.(type) {
	case *Command:
		options, err := parseOptions(in, n.Options)
		if err != nil {
			return err
		}
		arguments, err := parseArguments(in, n.Arguments)
		if err != nil {
			return err
		}
		if err := ensureExhausted(in); err != nil {
			return err
		}
		return n.Run(NewContext(c, arguments, options))

	case *Group:
		options, err := parseOptions(in, n.Options)
		if err != nil {
			return err
		}
		if err := ensureExhausted(in); err != nil {
			return err
		}
		if n.Run == nil {
			name := strings.Join(path, " ")
			if name == "" {
				return errors.New(errors.ErrCommandRequired, "a command is required")
			}
			return errors.Newf(errors.ErrCommandRequired, "%q requires a subcommand", name)
		}
		return n.Run(NewContext(c, nil, options))

	default:
		// Node is a closed set; nothing else can get here.
		return errors.New(errors.ErrUnknown, "unsupported command node")
	}
}
