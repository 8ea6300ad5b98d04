package parley

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/help"
	"github.com/aretw0/parley/pkg/token"
)

// Version is the library version, reported by the parley CLI.
const Version = "0.1.0"

// ContentRenderer formats a command's markdown description for topic
// help. The default dispatcher prints descriptions verbatim.
type ContentRenderer interface {
	Render(content string) (string, error)
}

// Dispatcher drives traversals of a command tree: executing input tokens
// against it, introspecting it for help, and running interactive loops
// over it. A zero-configured dispatcher reads stdin, writes stdout, and
// logs nowhere.
//
// A Dispatcher is not safe for concurrent use; dispatching is
// single-threaded by design.
type Dispatcher struct {
	in       io.Reader
	out      io.Writer
	prompt   string
	width    int
	logger   *slog.Logger
	hooks    LifecycleHooks
	styles   help.Styles
	renderer ContentRenderer
	scanner  *bufio.Scanner
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithInput sets the reader interactive loops take lines from.
func WithInput(r io.Reader) Option {
	return func(d *Dispatcher) { d.in = r }
}

// WithOutput sets the writer for prompts, help, and diagnostics.
func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) { d.out = w }
}

// WithPrompt sets the interactive loop prompt.
func WithPrompt(p string) Option {
	return func(d *Dispatcher) { d.prompt = p }
}

// WithWidth fixes the help wrap width instead of probing the terminal.
func WithWidth(w int) Option {
	return func(d *Dispatcher) { d.width = w }
}

// WithLogger sets a structured logger for dispatch debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks LifecycleHooks) Option {
	return func(d *Dispatcher) { d.hooks = hooks }
}

// WithRenderer sets the markdown renderer for command descriptions.
func WithRenderer(r ContentRenderer) Option {
	return func(d *Dispatcher) { d.renderer = r }
}

// New creates a Dispatcher. Unset options fall back to stdin/stdout, the
// "~> " prompt, a no-op logger, terminal-probed styling, and a wrap width
// taken from the terminal when the output is one.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		in:     os.Stdin,
		out:    os.Stdout,
		prompt: "~> ",
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.NewNop()
	}
	if d.width <= 0 {
		d.width = probeWidth(d.out)
	}
	d.styles = help.DetectStyles(d.out)
	return d
}

func probeWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
				return cols
			}
		}
	}
	return 0
}

var (
	defaultOnce       sync.Once
	defaultDispatcher *Dispatcher
)

// Default returns the shared stdin/stdout dispatcher used by the
// package-level drivers.
func Default() *Dispatcher {
	defaultOnce.Do(func() {
		defaultDispatcher = New()
	})
	return defaultDispatcher
}

// Parse dispatches the given tokens against the tree the builder
// describes. A leading "help" token is intercepted: "help" renders the
// full tree and "help a b" renders the sub-tree reached by those names,
// both from an introspect-mode snapshot. Dispatch failures are returned
// as a *DispatchError; Explain turns one into user-facing diagnostics.
func (d *Dispatcher) Parse(tokens []string, build func(*Ctx)) error {
	if len(tokens) > 0 && tokens[0] == "help" {
		d.renderHelp(tokens[1:], build)
		return nil
	}
	return d.dispatch(tokens, build)
}

// Args dispatches the process arguments. On failure it renders
// diagnostics to the dispatcher output and returns the error.
func (d *Dispatcher) Args(build func(*Ctx)) error {
	err := d.Parse(os.Args[1:], build)
	if err != nil {
		d.Explain(err, build)
	}
	return err
}

// Inspect runs the builder in introspect mode and returns the tree
// snapshot. No constraint is matched against input and no handler runs.
func (d *Dispatcher) Inspect(build func(*Ctx)) *help.Tree {
	t := &traversal{mode: modeIntrospect, d: d}
	tree := &help.Tree{}
	runScope(t, token.Cursor{}, &tree.Entries, build)
	return tree
}

// Parse dispatches tokens on the default dispatcher.
func Parse(tokens []string, build func(*Ctx)) error {
	return Default().Parse(tokens, build)
}

// Args dispatches the process arguments on the default dispatcher.
func Args(build func(*Ctx)) error {
	return Default().Args(build)
}

// Inspect snapshots the tree on the default dispatcher.
func Inspect(build func(*Ctx)) *help.Tree {
	return Default().Inspect(build)
}

// UserLoop runs an interactive loop on the default dispatcher: it reads
// a line, tokenizes it, dispatches, and repeats until a handler calls
// Quit on the loop's control-flow cell. The Quit payload is returned.
// End of input ends the loop with the zero payload and io.EOF.
func UserLoop[T any](build func(*Ctx, *ControlFlow[T])) (T, error) {
	return LoopWith(Default(), build)
}

// LoopWith is UserLoop on a specific dispatcher.
func LoopWith[T any](d *Dispatcher, build func(*Ctx, *ControlFlow[T])) (T, error) {
	return runLoop(d, build)
}

func runLoop[T any](d *Dispatcher, build func(*Ctx, *ControlFlow[T])) (T, error) {
	for {
		fmt.Fprint(d.out, d.prompt)
		line, err := d.readLine()
		if err != nil {
			var zero T
			return zero, err
		}
		tokens := token.Split(line)
		if len(tokens) == 0 {
			continue
		}

		var result *T
		cf := &ControlFlow[T]{dst: &result}
		wrapped := func(c *Ctx) { build(c, cf) }
		if err := d.Parse(tokens, wrapped); err != nil {
			d.Explain(err, wrapped)
		}
		if result != nil {
			return *result, nil
		}
	}
}

func (d *Dispatcher) readLine() (string, error) {
	if d.scanner == nil {
		d.scanner = bufio.NewScanner(d.in)
	}
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return d.scanner.Text(), nil
}

func (d *Dispatcher) dispatch(tokens []string, build func(*Ctx)) error {
	d.logger.Debug("dispatch", "tokens", tokens)
	if d.hooks.OnDispatch != nil {
		d.hooks.OnDispatch(&DispatchEvent{EventBase: eventBase(EventDispatch), Tokens: tokens})
	}

	t := &traversal{mode: modeExecute, d: d, tokens: tokens}
	runScope(t, token.NewCursor(tokens), nil, build)
	if !t.finished() {
		t.fail(NoMatch, 0, "input did not match any known command")
	}
	if t.err != nil {
		d.logger.Debug("dispatch failed", "err", t.err)
		if d.hooks.OnError != nil {
			d.hooks.OnError(&ErrorEvent{
				EventBase: eventBase(EventError),
				Kind:      t.err.Kind.String(),
				Depth:     t.err.Depth,
				Message:   t.err.Message,
			})
		}
		return t.err
	}
	return nil
}

func (t *traversal) fireMatch(usage string, depth int) {
	if t.d == nil {
		return
	}
	t.d.logger.Debug("match", "usage", usage, "depth", depth)
	if t.d.hooks.OnMatch != nil {
		t.d.hooks.OnMatch(&MatchEvent{EventBase: eventBase(EventMatch), Usage: usage, Depth: depth})
	}
}

func (t *traversal) fireRun(usage string, depth int) {
	if t.d == nil {
		return
	}
	t.d.logger.Debug("run", "usage", usage, "depth", depth)
	if t.d.hooks.OnRun != nil {
		t.d.hooks.OnRun(&RunEvent{EventBase: eventBase(EventRun), Usage: usage, Depth: depth})
	}
}
