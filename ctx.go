package parley

import (
	"github.com/aretw0/parley/pkg/constraint"
	"github.com/aretw0/parley/pkg/help"
	"github.com/aretw0/parley/pkg/token"
)

// Unit is the empty value produced by purely-naming constraints.
type Unit = constraint.Unit

type mode int

const (
	modeExecute mode = iota
	modeIntrospect
)

// traversal is the shared state of one dispatch: which mode it runs in,
// whether a handler already fired, and the first failure recorded. A
// traversal is created per dispatch and discarded with it.
type traversal struct {
	mode   mode
	d      *Dispatcher
	tokens []string
	done   bool
	err    *DispatchError
}

// finished reports whether the traversal reached an outcome, good or bad.
// Once finished, no further handler may fire and no further error may be
// recorded; the first outcome wins.
func (t *traversal) finished() bool {
	return t.done || t.err != nil
}

func (t *traversal) fail(kind ErrorKind, depth int, msg string) {
	if t.finished() {
		return
	}
	t.err = &DispatchError{Kind: kind, Depth: depth, Tokens: t.tokens, Message: msg}
}

// Ctx is the registration surface for one scope of the command tree. It is
// valid only for the duration of the builder callback it was passed to.
//
// In execute mode every registration eagerly probes its constraint against
// the scope's remaining tokens; in introspect mode nothing is probed and
// every registration is recorded into the snapshot. Registration order is
// match priority: the first matching command wins, so register specific
// commands before general ones and Otherwise last.
type Ctx struct {
	t       *traversal
	cur     token.Cursor
	entries *[]*help.Entry
	pending *Command
}

// Command registers a command named by the given constraint. The returned
// builder attaches description, arguments, sub-commands, and the handler.
func (c *Ctx) Command(con constraint.Constraint[Unit]) *Command {
	var u Unit
	return c.register(constraint.Bind(con, &u), false)
}

// DataCommand registers a command whose leading constraint extracts a
// value through the binder, e.g. DataCommand(Bind(Range(0, 100), &n)).
func (c *Ctx) DataCommand(b constraint.Binder) *Command {
	return c.register(b, false)
}

// Otherwise registers a fallback that matches any remaining input,
// consuming nothing. Register it after every other command in the scope;
// an early Otherwise silently shadows its later siblings.
func (c *Ctx) Otherwise() *Command {
	var u Unit
	return c.register(constraint.Bind(constraint.Always(), &u), true)
}

func (c *Ctx) register(b constraint.Binder, fallback bool) *Command {
	c.finalizePending()

	cmd := &Command{t: c.t, usage: b.Usage()}
	switch c.t.mode {
	case modeExecute:
		cur := c.cur
		if b.Capture(&cur) {
			cmd.live = true
			cmd.cur = cur
		}
	case modeIntrospect:
		e := &help.Entry{Usage: b.Usage(), Fallback: fallback}
		if n, ok := b.(constraint.Named); ok {
			e.Names = n.Tokens()
		}
		*c.entries = append(*c.entries, e)
		cmd.entry = e
	}
	c.pending = cmd
	return cmd
}

// finalizePending settles the previously registered command before the
// next one probes. A command that matched input but never reached a
// handler, a sub-match, or an error is a dead end and poisons the
// traversal at its depth, so a later, more general sibling cannot
// steal input a more specific command already claimed.
func (c *Ctx) finalizePending() {
	if c.pending == nil {
		return
	}
	cmd := c.pending
	c.pending = nil
	if c.t.mode == modeExecute && cmd.live && !c.t.finished() {
		c.t.fail(NoMatch, cmd.cur.Depth(), "input did not lead to a runnable command")
	}
}

// runScope invokes the builder callback for one scope and settles its last
// registration afterwards.
func runScope(t *traversal, cur token.Cursor, entries *[]*help.Entry, build func(*Ctx)) {
	c := &Ctx{t: t, cur: cur, entries: entries}
	build(c)
	c.finalizePending()
}
