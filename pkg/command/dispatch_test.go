package command_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/clide/pkg/command"
	"github.com/arthur-debert/clide/pkg/console/consoletest"
	"github.com/arthur-debert/clide/pkg/errors"
)

// testCommand declares argument "foo" and options "bar" (no default) and
// "default" (default "default"), mirroring the engine's canonical example.
func testCommand(captured **command.Context) *command.Command {
	return &command.Command{
		Arguments: []command.Argument{{Name: "foo"}},
		Options: []command.Option{
			{Name: "bar", Short: 'b'},
			{Name: "default", Short: 'd', Default: "default", HasDefault: true},
		},
		Run: func(ctx *command.Context) error {
			*captured = ctx
			return nil
		},
	}
}

func TestDispatchEndToEnd(t *testing.T) {
	var ctx *command.Context
	root := &command.Group{
		Children: map[string]command.Node{"test": testCommand(&ctx)},
	}
	c := consoletest.New()

	err := command.Dispatch(c, root, []string{"test", "hello", "-b", "world", "-d", "def"})

	require.NoError(t, err)
	require.NotNil(t, ctx)

	foo, err := ctx.Argument("foo")
	require.NoError(t, err)
	assert.Equal(t, "hello", foo)

	bar, err := ctx.RequireOption("bar")
	require.NoError(t, err)
	assert.Equal(t, "world", bar)

	def, err := ctx.RequireOption("default")
	require.NoError(t, err)
	assert.Equal(t, "def", def)

	assert.Same(t, c, ctx.Console)
}

func TestDispatchDefaultApplies(t *testing.T) {
	var ctx *command.Context
	root := &command.Group{
		Children: map[string]command.Node{"test": testCommand(&ctx)},
	}

	err := command.Dispatch(consoletest.New(), root, []string{"test", "hello", "-b", "world"})

	require.NoError(t, err)
	def, err := ctx.RequireOption("default")
	require.NoError(t, err)
	assert.Equal(t, "default", def)
}

func TestDispatchMissingRequiredOption(t *testing.T) {
	var ctx *command.Context
	root := &command.Group{
		Children: map[string]command.Node{"test": testCommand(&ctx)},
	}

	err := command.Dispatch(consoletest.New(), root, []string{"test", "hello"})

	require.NoError(t, err, "absence is not a parse failure")
	_, err = ctx.RequireOption("bar")
	assert.True(t, errors.IsIdentifier(err, errors.ErrOptionRequired))
}

func TestDispatchNestedGroups(t *testing.T) {
	var ctx *command.Context
	leaf := &command.Command{
		Arguments: []command.Argument{{Name: "foo"}},
		Options:   []command.Option{{Name: "bar", Short: 'b'}},
		Run: func(c *command.Context) error {
			ctx = c
			return nil
		},
	}
	root := &command.Group{
		Children: map[string]command.Node{
			"sub": &command.Group{
				Children: map[string]command.Node{"test": leaf},
			},
		},
	}

	err := command.Dispatch(consoletest.New(), root, []string{"sub", "test", "foo", "-b", "bar"})

	require.NoError(t, err)
	require.NotNil(t, ctx)

	foo, err := ctx.Argument("foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", foo)

	bar, err := ctx.RequireOption("bar")
	require.NoError(t, err)
	assert.Equal(t, "bar", bar)
}

func TestDispatchArgumentRequired(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"no_positionals", []string{"test"}},
		{"options_do_not_count", []string{"test", "-b", "world"}},
	}

	var ctx *command.Context
	root := &command.Group{
		Children: map[string]command.Node{"test": testCommand(&ctx)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := command.Dispatch(consoletest.New(), root, tt.tokens)

			assert.True(t, errors.IsIdentifier(err, errors.ErrArgumentRequired))
		})
	}
}

func TestDispatchExcessInput(t *testing.T) {
	var ctx *command.Context
	root := &command.Group{
		Children: map[string]command.Node{"test": testCommand(&ctx)},
	}

	tests := []struct {
		name     string
		tokens   []string
		leftover string
	}{
		{"extra_positional", []string{"test", "hello", "surplus"}, "surplus"},
		{"unknown_flag", []string{"test", "hello", "--frob", "x"}, "--frob"},
		{"typoed_subcommand", []string{"tset"}, "tset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := command.Dispatch(consoletest.New(), root, tt.tokens)

			require.Error(t, err)
			assert.True(t, errors.IsIdentifier(err, errors.ErrExcessInput))
			assert.Contains(t, errors.GetReason(err), tt.leftover)
		})
	}
}

func TestDispatchGroupHandlerRunsWhenInputExhausted(t *testing.T) {
	ran := false
	root := &command.Group{
		Options: []command.Option{{Name: "verbose", Default: "no", HasDefault: true}},
		Run: func(ctx *command.Context) error {
			ran = true
			v, err := ctx.RequireOption("verbose")
			assert.NoError(t, err)
			assert.Equal(t, "no", v)
			return nil
		},
		Children: map[string]command.Node{
			"child": &command.Command{Run: func(*command.Context) error { return nil }},
		},
	}

	err := command.Dispatch(consoletest.New(), root, nil)

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestDispatchGroupWithoutHandler(t *testing.T) {
	root := &command.Group{
		Children: map[string]command.Node{
			"sub": &command.Group{
				Children: map[string]command.Node{},
			},
		},
	}

	err := command.Dispatch(consoletest.New(), root, []string{"sub"})

	assert.True(t, errors.IsIdentifier(err, errors.ErrCommandRequired))
}

func TestDispatchGroupOptionsParsedAtStoppingNode(t *testing.T) {
	var got string
	root := &command.Group{
		Options: []command.Option{{Name: "color", Short: 'c'}},
		Run: func(ctx *command.Context) error {
			got, _ = ctx.Option("color")
			return nil
		},
		Children: map[string]command.Node{},
	}

	err := command.Dispatch(consoletest.New(), root, []string{"--color=never"})

	require.NoError(t, err)
	assert.Equal(t, "never", got)
}

func TestDispatchHandlerErrorPropagatesUnmodified(t *testing.T) {
	hostErr := errors.New("packNotFound", "no pack named vim")
	root := &command.Group{
		Children: map[string]command.Node{
			"fail": &command.Command{Run: func(*command.Context) error { return hostErr }},
		},
	}

	err := command.Dispatch(consoletest.New(), root, []string{"fail"})

	assert.Same(t, hostErr, err)
}

func TestDispatchPlainHandlerErrorPropagates(t *testing.T) {
	hostErr := fmt.Errorf("business logic exploded")
	root := &command.Group{
		Children: map[string]command.Node{
			"fail": &command.Command{Run: func(*command.Context) error { return hostErr }},
		},
	}

	err := command.Dispatch(consoletest.New(), root, []string{"fail"})

	assert.Equal(t, hostErr, err)
}

func TestDispatchChildNamesAreCaseSensitive(t *testing.T) {
	root := &command.Group{
		Children: map[string]command.Node{
			"Test": &command.Command{Run: func(*command.Context) error { return nil }},
		},
	}

	err := command.Dispatch(consoletest.New(), root, []string{"test"})

	assert.True(t, errors.IsIdentifier(err, errors.ErrExcessInput))
}

func TestDispatchLongEqualsAndSeparatedFormsAgree(t *testing.T) {
	for _, tokens := range [][]string{
		{"test", "hello", "--bar", "world"},
		{"test", "hello", "--bar=world"},
		{"test", "hello", "-b", "world"},
	} {
		var ctx *command.Context
		root := &command.Group{
			Children: map[string]command.Node{"test": testCommand(&ctx)},
		}

		err := command.Dispatch(consoletest.New(), root, tokens)

		require.NoError(t, err)
		bar, err := ctx.RequireOption("bar")
		require.NoError(t, err)
		assert.Equal(t, "world", bar)
	}
}

func TestDispatchOptionsMayPrecedePositionals(t *testing.T) {
	var ctx *command.Context
	root := &command.Group{
		Children: map[string]command.Node{"test": testCommand(&ctx)},
	}

	err := command.Dispatch(consoletest.New(), root, []string{"test", "-b", "world", "hello"})

	require.NoError(t, err)
	foo, err := ctx.Argument("foo")
	require.NoError(t, err)
	assert.Equal(t, "hello", foo)
}
