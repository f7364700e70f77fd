package command

// Argument declares a required positional parameter. Arguments are consumed
// from input in declaration order.
type Argument struct {
	Name string
	Help []string
}

// Option declares a named parameter, matched in input as "--name value",
// "--name=value", or "-s value" when a short alias is set. An option with a
// default is satisfied even when absent from input.
type Option struct {
	Name       string
	Short      rune // 0 means no short alias
	Default    string
	HasDefault bool
	Help       []string
}

// DefaultValue returns the declared default, if any.
func (o Option) DefaultValue() (string, bool) {
	return o.Default, o.HasDefault
}

// WithDefault returns a copy of the option carrying a default value.
func (o Option) WithDefault(value string) Option {
	o.Default = value
	o.HasDefault = true
	return o
}

// RunFunc is a command handler. Errors propagate to the dispatcher's caller
// unmodified.
type RunFunc func(*Context) error

// Node is a tree element: either a *Command leaf or a *Group. The set is
// closed so dispatch can switch exhaustively.
type Node interface {
	isNode()
}

// Command is an executable leaf declaring positional arguments and options.
type Command struct {
	Arguments []Argument
	Options   []Option
	Help      []string
	Run       RunFunc
}

func (*Command) isNode() {}

// Group routes to child nodes by name. Its own handler runs only when no
// remaining leading token names a child; a group with a nil handler rejects
// that case with a commandRequired failure.
type Group struct {
	Options  []Option
	Help     []string
	Run      RunFunc
	Children map[string]Node
}

func (*Group) isNode() {}

var (
	_ Node = (*Command)(nil)
	_ Node = (*Group)(nil)
)
