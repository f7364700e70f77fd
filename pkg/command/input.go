package command

// Input is the mutable cursor over the raw tokens still unconsumed during
// one dispatch resolution. It shrinks monotonically as tokens are claimed by
// descent, option extraction, or argument extraction.
type Input struct {
	tokens []string
}

// NewInput creates a cursor over a copy of tokens.
func NewInput(tokens []string) *Input {
	owned := make([]string, len(tokens))
	copy(owned, tokens)
	return &Input{tokens: owned}
}

// Len returns the number of unconsumed tokens.
func (in *Input) Len() int {
	return len(in.tokens)
}

// Peek returns the leading token without consuming it.
func (in *Input) Peek() (string, bool) {
	if len(in.tokens) == 0 {
		return "", false
	}
	return in.tokens[0], true
}

// Next consumes and returns the leading token.
func (in *Input) Next() (string, bool) {
	if len(in.tokens) == 0 {
		return "", false
	}
	tok := in.tokens[0]
	in.tokens = in.tokens[1:]
	return tok, true
}

// Remaining returns a copy of the unconsumed tokens.
func (in *Input) Remaining() []string {
	out := make([]string, len(in.tokens))
	copy(out, in.tokens)
	return out
}

// removeAt drops the token at index i, preserving order of the rest.
func (in *Input) removeAt(i int) {
	in.tokens = append(in.tokens[:i], in.tokens[i+1:]...)
}
