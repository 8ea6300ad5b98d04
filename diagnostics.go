package parley

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/parley/pkg/help"
	"github.com/aretw0/parley/pkg/suggest"
)

// Explain renders a dispatch failure as user-facing diagnostics: the
// echoed input line, a caret under the failing token, a "did you mean"
// suggestion when a registered name is close, and the usage of the scope
// the failure happened in. The builder is re-run in introspect mode to
// obtain the snapshot; navigation to the failing scope follows literal
// command names, never the failing tokens themselves.
func (d *Dispatcher) Explain(err error, build func(*Ctx)) {
	var de *DispatchError
	if !errors.As(err, &de) {
		fmt.Fprintln(d.out, d.styles.Error("# Error"))
		fmt.Fprintln(d.out, err)
		return
	}

	fmt.Fprintln(d.out, d.styles.Error("# Error"))
	fmt.Fprintln(d.out, de.Line())
	fmt.Fprintf(d.out, "%s %s\n", d.styles.Error(caretLine(de.Tokens, de.Depth)), de.Message)

	snap := d.Inspect(build)
	scope, _ := snap.Resolve(de.Tokens[:min(de.Depth, len(de.Tokens))])

	if de.Kind == NoMatch && de.Depth < len(de.Tokens) {
		if s, ok := suggest.Nearest(de.Tokens[de.Depth], scope.Names()); ok {
			fmt.Fprintf(d.out, "did you mean %q?\n", s)
		}
	}

	fmt.Fprint(d.out, "\nUsage:\n")
	f := help.NewFormatter(d.out, d.width, d.styles)
	help.Render(f, scope)
}

// caretLine builds the "   ^^^" marker pointing at tokens[depth] in the
// space-joined echo of tokens. Past-the-end depths get a single caret.
func caretLine(tokens []string, depth int) string {
	pad := 0
	for _, t := range tokens[:min(depth, len(tokens))] {
		pad += len(t) + 1
	}
	width := 1
	if depth < len(tokens) {
		width = len(tokens[depth])
	}
	return strings.Repeat(" ", pad) + strings.Repeat("^", width)
}

// renderHelp serves the intercepted "help" command. With no topic it
// renders the whole tree; with a topic path it descends the snapshot by
// name and renders the entry reached.
func (d *Dispatcher) renderHelp(topic []string, build func(*Ctx)) {
	snap := d.Inspect(build)
	f := help.NewFormatter(d.out, d.width, d.styles)

	if len(topic) == 0 {
		help.Render(f, snap)
		return
	}

	parent, consumed := snap.Resolve(topic[:len(topic)-1])
	if consumed < len(topic)-1 {
		d.unknownTopic(topic[consumed], parent)
		return
	}
	entry := parent.Lookup(topic[len(topic)-1])
	if entry == nil {
		d.unknownTopic(topic[len(topic)-1], parent)
		return
	}

	if d.renderer != nil && entry.Description != "" {
		rendered, err := d.renderer.Render(entry.Description)
		if err == nil {
			stripped := *entry
			stripped.Description = ""
			help.RenderEntry(f, &stripped)
			fmt.Fprintln(d.out, rendered)
			return
		}
		d.logger.Debug("description render failed", "err", err)
	}
	help.RenderEntry(f, entry)
}

func (d *Dispatcher) unknownTopic(word string, scope *help.Tree) {
	fmt.Fprintf(d.out, "no help topic %q\n", word)
	if s, ok := suggest.Nearest(word, scope.Names()); ok {
		fmt.Fprintf(d.out, "did you mean %q?\n", s)
	}
}
