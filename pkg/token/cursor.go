package token

// Cursor walks an ordered slice of input tokens.
//
// It is a value type: copying a Cursor yields an independent position over
// the same underlying tokens, which is how constraints probe the stream
// without committing. Depth counts the tokens consumed so far and doubles
// as the position reported in dispatch diagnostics.
type Cursor struct {
	tokens []string
	pos    int
}

// NewCursor creates a cursor at the start of the given tokens.
// The slice is not copied; callers must not mutate it during a traversal.
func NewCursor(tokens []string) Cursor {
	return Cursor{tokens: tokens}
}

// Next consumes and returns the next token.
func (c *Cursor) Next() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	t := c.tokens[c.pos]
	c.pos++
	return t, true
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.pos], true
}

// Done reports whether all tokens have been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.tokens)
}

// Depth returns the number of tokens consumed so far.
func (c *Cursor) Depth() int {
	return c.pos
}

// Rest returns the unconsumed tail of the token stream.
func (c *Cursor) Rest() []string {
	return c.tokens[c.pos:]
}

// Tokens returns the full underlying token slice.
func (c *Cursor) Tokens() []string {
	return c.tokens
}
