package parley

import (
	"github.com/aretw0/parley/pkg/constraint"
	"github.com/aretw0/parley/pkg/help"
	"github.com/aretw0/parley/pkg/token"
)

// Command is the builder handle returned by a registration. Its methods
// attach description text, positional arguments, a sub-tree, and a
// terminal handler. In execute mode the handle also carries the live
// cursor position past the tokens its constraint consumed.
type Command struct {
	t       *traversal
	usage   string
	live    bool
	matched bool
	cur     token.Cursor

	entry *help.Entry
}

// Describe attaches help text to the command. Markdown is allowed; the
// configured content renderer formats it for topic help.
func (cmd *Command) Describe(desc string) *Command {
	if cmd.entry != nil {
		cmd.entry.Description = desc
	}
	return cmd
}

// Arg attaches one positional argument. In execute mode the binder is
// evaluated immediately against the tokens following the command name; a
// token it rejects fails the whole dispatch with ErrBadArgument at that
// position, because a matched name commits the traversal to this command.
func (cmd *Command) Arg(b constraint.Binder) *Command {
	switch cmd.t.mode {
	case modeExecute:
		if cmd.live && !cmd.t.finished() {
			at := cmd.cur.Depth()
			if !b.Capture(&cmd.cur) {
				cmd.t.fail(BadArgument, at, "invalid argument")
			}
		}
	case modeIntrospect:
		cmd.entry.Args = append(cmd.entry.Args, b.Usage())
	}
	return cmd
}

// SubCommands descends into a nested scope built by the callback. The
// callback sees only the tokens left after this command's name and
// arguments.
func (cmd *Command) SubCommands(build func(*Ctx)) *Command {
	switch cmd.t.mode {
	case modeExecute:
		if cmd.live && !cmd.t.finished() {
			cmd.commit()
			runScope(cmd.t, cmd.cur, nil, build)
		}
	case modeIntrospect:
		runScope(cmd.t, token.Cursor{}, &cmd.entry.Children, build)
	}
	return cmd
}

// Run attaches the terminal handler. It fires only when this command
// matched, every token has been consumed, and nothing else in the
// traversal reached an outcome first. Leftover tokens fail the dispatch
// with ErrTrailingInput instead of running the handler.
func (cmd *Command) Run(fn func()) {
	switch cmd.t.mode {
	case modeExecute:
		if cmd.live && !cmd.t.finished() {
			if !cmd.cur.Done() {
				cmd.t.fail(TrailingInput, cmd.cur.Depth(), "excess input after command")
				return
			}
			cmd.commit()
			cmd.t.fireRun(cmd.usage, cmd.cur.Depth())
			fn()
			cmd.t.done = true
		}
	case modeIntrospect:
		cmd.entry.Runnable = true
	}
}

// Loop makes the command start a nested interactive loop on the
// dispatcher's input. The loop owns a fresh control-flow cell; a handler
// inside it calling Quit ends this loop only, returning control to the
// enclosing one. Leftover tokens fail the dispatch instead of looping.
func (cmd *Command) Loop(build func(*Ctx, *ControlFlow[Unit])) {
	switch cmd.t.mode {
	case modeExecute:
		if cmd.live && !cmd.t.finished() {
			if !cmd.cur.Done() {
				cmd.t.fail(TrailingInput, cmd.cur.Depth(), "excess input after command")
				return
			}
			cmd.commit()
			runLoop(cmd.t.d, build)
			cmd.t.done = true
		}
	case modeIntrospect:
		cmd.entry.Loop = true
		c := &Ctx{t: cmd.t, entries: &cmd.entry.Children}
		build(c, &ControlFlow[Unit]{})
		c.finalizePending()
	}
}

// commit marks the command as the traversal's chosen path, once.
func (cmd *Command) commit() {
	if cmd.matched {
		return
	}
	cmd.matched = true
	cmd.t.fireMatch(cmd.usage, cmd.cur.Depth())
}
